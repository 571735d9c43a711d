package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error as
// {"error":{"code","message"}}. Anything that is not an *AppError becomes
// INTERNAL_ERROR so provider and database messages never reach the client.
// Responses a handler already wrote are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.With("request_id", c.GetString(requestIDKey), "path", c.Request.URL.Path)

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error", "method", c.Request.Method, "error", err.Error())
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
		}

		abortWithAppError(c, appErr)
	}
}

func abortWithAppError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}
