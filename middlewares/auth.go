package middlewares

import (
	"net/http"
	"strings"

	"github.com/Ambaks/campuseats/auth"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "userId"
	CtxEmail  = "email"
)

// AuthMiddleware verifies the bearer token through the identity provider
// and stores the resolved uid on the request context.
func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		id, err := verifier.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, id.UID)
		c.Set(CtxEmail, id.Email)
		c.Next()
	}
}
