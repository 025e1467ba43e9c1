package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Hard failures. These abort the request; everything else the admission flow
// runs into is folded into the response envelope as a soft condition.
var (
	ErrDeviceIDRequired = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_ID_REQUIRED",
		"A device_id is required.",
		"",
	)

	ErrInvalidShareChannel = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SHARE_CHANNEL",
		"Unknown share channel.",
		"",
	)

	ErrShareDeviceNotFound = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_NOT_FOUND",
		"Device is not in line.",
		"",
	)

	ErrQueueUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"QUEUE_UNAVAILABLE",
		"Failed to connect to the database.",
		"",
	)

	ErrSignupInvalid = NewBaseError(
		http.StatusBadRequest,
		"SIGNUP_INVALID",
		"A valid email and device_id are required.",
		"",
	)
)
