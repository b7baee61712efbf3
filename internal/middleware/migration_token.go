package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
)

// MigrationTokenHeader carries the shared secret for admin endpoints.
const MigrationTokenHeader = "X-Migrate-Token"

// MigrationToken creates a Gin middleware that validates the X-Migrate-Token
// header against the configured token. Without a configured token the guarded
// endpoints are disabled.
func MigrationToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			WriteError(c, apperrors.ErrMigrationsNotConfigured)
			return
		}
		got := c.GetHeader(MigrationTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			WriteError(c, apperrors.ErrInvalidMigrationToken)
			return
		}
		c.Next()
	}
}
