package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes used across the service layer
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeUpstream      = "UPSTREAM_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type returned by the service layer. Code selects the
// HTTP status at the handler boundary; Details carries the raw underlying
// error message for diagnostics.
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates an AppError with the given code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates a not-found AppError
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NewValidationError creates a validation AppError
func NewValidationError(message, details string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Details: details}
}

// ErrorBody is the wire shape of every error response
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SendError writes a JSON error body with the given status
func SendError(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrorBody{Error: message, Details: details})
}
