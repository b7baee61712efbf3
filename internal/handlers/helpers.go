package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/middleware"
)

// getUserID extracts the acting user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString("userID")
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// bindOptionalJSON binds a JSON body when one is sent. An empty body leaves
// req untouched.
func bindOptionalJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// respondWithError writes the JSON error envelope for err.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
