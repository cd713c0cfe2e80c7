package errors

import (
	"net/http"

	"larder/internal/errors"
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

// Predefined error types
var (
	// Identity-related errors
	ErrIdentityRequired = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_REQUIRED",
		"A signed-in identity is required for this operation",
		"",
	)

	// List-related errors
	ErrListNotFound = NewBaseError(
		http.StatusNotFound,
		"LIST_NOT_FOUND",
		"The requested list does not exist",
		"",
	)

	// Preference-related errors
	ErrPreferencesFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"PREFERENCES_FETCH_FAILED",
		"Could not load preferences from the remote store",
		"",
	)

	ErrPreferencesSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"PREFERENCES_SAVE_FAILED",
		"Could not save preferences to the remote store",
		"",
	)

	// Shopping queue errors
	ErrShoppingQueueWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"SHOPPING_QUEUE_WRITE_FAILED",
		"Could not add items to the shopping queue",
		"",
	)
)

// NewDatabaseExecuteError wraps an arbitrary database failure as an AppError
// with the underlying error preserved in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		message,
		err.Error(),
	)
}
