// Package errors provides the application error type returned by services.
// Handlers translate an AppError into a JSON body carrying only its code and
// message, so internal causes never reach the client.
package errors

import "net/http"

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

// Is matches any AppError carrying the same code, so a wrapped or
// re-messaged copy still compares equal to its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the sentinel's code, message and status,
// recording internal as the cause.
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

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrPayloadTooLarge  = &AppError{Code: "PAYLOAD_TOO_LARGE", Message: "Payload too large", StatusCode: http.StatusRequestEntityTooLarge}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrUnauthorized     = &AppError{Code: "UNAUTHORIZED", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrAdminUnavailable = &AppError{Code: "ADMIN_NOT_CONFIGURED", Message: "Admin endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)

// Catalog errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment option not found", StatusCode: http.StatusNotFound}
)

// External service errors.
var (
	ErrLLMNotConfigured = &AppError{Code: "LLM_NOT_CONFIGURED", Message: "AI assistant is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrLLMUnavailable   = &AppError{Code: "LLM_UNAVAILABLE", Message: "AI assistant failed to respond", StatusCode: http.StatusBadGateway}
	ErrEmailFailed      = &AppError{Code: "EMAIL_FAILED", Message: "Failed to send email", StatusCode: http.StatusBadGateway}
)

// Lead, history and reminder errors.
var (
	ErrLeadNotFound     = &AppError{Code: "LEAD_NOT_FOUND", Message: "Lead not found", StatusCode: http.StatusNotFound}
	ErrBatchNotFound    = &AppError{Code: "BATCH_NOT_FOUND", Message: "Search batch not found", StatusCode: http.StatusNotFound}
	ErrInvalidStatus    = &AppError{Code: "INVALID_STATUS", Message: "Unsupported batch status", StatusCode: http.StatusBadRequest}
	ErrReminderNotFound = &AppError{Code: "REMINDER_NOT_FOUND", Message: "Reminder not found", StatusCode: http.StatusNotFound}
)
