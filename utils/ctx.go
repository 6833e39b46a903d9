package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the verified uid set by the auth middleware,
// or "" when the request is unauthenticated.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
