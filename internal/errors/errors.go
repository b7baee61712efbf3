// Package errors provides custom error types for the Gulf Acorns API.
// All service-layer errors should use AppError so that responses carry a
// stable code and never leak storage details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so wrapped copies of a
// sentinel still satisfy errors.Is(err, Sentinel).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Resolve maps any error to the AppError reported to clients. Errors that
// are not AppErrors become ErrInternalServer carrying the original as Internal.
func Resolve(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ErrInternalServer, err)
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Storage errors. Persistence failures are surfaced unchanged and never retried.
var (
	ErrPersistenceFailure = &AppError{Code: "PERSISTENCE_FAILURE", Message: "A storage error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
)

// Round-up errors.
var (
	ErrNoRuleConfigured = &AppError{Code: "NO_RULE_CONFIGURED", Message: "No round-up rule is configured", StatusCode: http.StatusBadRequest}
	ErrInvalidRuleType  = &AppError{Code: "INVALID_RULE_TYPE", Message: "Unsupported round-up rule type", StatusCode: http.StatusBadRequest}
)

// Admin errors.
var (
	ErrMigrationFailed         = &AppError{Code: "MIGRATION_FAILED", Message: "Migration failed", StatusCode: http.StatusInternalServerError}
	ErrMigrationsNotConfigured = &AppError{Code: "MIGRATIONS_NOT_CONFIGURED", Message: "Migration endpoint is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrInvalidMigrationToken   = &AppError{Code: "INVALID_MIGRATION_TOKEN", Message: "Invalid or missing migration token", StatusCode: http.StatusUnauthorized}
)
