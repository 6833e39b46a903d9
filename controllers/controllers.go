package controllers

import (
	"errors"

	"github.com/Ambaks/campuseats/pkg/logger"
	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errImageTooLarge = errors.New("image exceeds 5MB limit")

// respondError maps the service error taxonomy onto HTTP. Anything
// uncategorized is logged with request context and surfaced generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUpstream):
		resp.BadRequest(c, err.Error())
	default:
		logger.L().Error("unhandled request error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		resp.ServerError(c)
	}
}
