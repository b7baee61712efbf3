package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/logger"
)

// ErrorHandler renders the last error recorded with c.Error when the handler
// chain finished without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}

// WriteError aborts the request with the JSON error envelope for err. Only the
// code and message reach the client; internal causes are logged.
func WriteError(c *gin.Context, err error) {
	appErr := apperrors.Resolve(err)
	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"error", appErr.Internal.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
	}
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// NotFound answers unmatched routes with the same envelope as handler errors.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		WriteError(c, apperrors.ErrNotFound)
	}
}
