package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "moneyharbor/internal/errors"
)

// AdminAuth creates a Gin middleware that validates the X-API-Key header
// against the configured admin API key. Admin routes answer 503 when no key
// is configured.
func AdminAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithAppError(c, apperrors.ErrAdminUnavailable)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithAppError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}
