// Package errors defines the application error taxonomy shared by the
// orchestration services and the HTTP delivery.
package errors

import (
	"net/http"

	"giftscout/internal/errors"
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
	// ErrConfigurationMissing signals that a required external credential is
	// absent. Callers fall back to offline behavior; this is never fatal.
	ErrConfigurationMissing = NewBaseError(
		http.StatusServiceUnavailable,
		"CONFIGURATION_MISSING",
		"External provider is not configured",
		"",
	)

	// ErrEstimateFailed covers transport or provider errors during the
	// estimate phase of the two-phase search.
	ErrEstimateFailed = NewBaseError(
		http.StatusBadGateway,
		"ESTIMATE_FAILED",
		"Failed to estimate search results",
		"",
	)

	// ErrSearchFailed covers transport or provider errors during the fetch
	// phase of the two-phase search.
	ErrSearchFailed = NewBaseError(
		http.StatusBadGateway,
		"SEARCH_FAILED",
		"Failed to search people data",
		"",
	)

	// ErrJobPollingRequired reports that the provider requested async
	// completion, which this system does not support.
	ErrJobPollingRequired = NewBaseError(
		http.StatusNotImplemented,
		"JOB_POLLING_REQUIRED",
		"Search is processing asynchronously; job polling is not supported",
		"",
	)

	// ErrSendFailed covers gift batch submission errors.
	ErrSendFailed = NewBaseError(
		http.StatusBadGateway,
		"SEND_FAILED",
		"Failed to send gifts",
		"",
	)

	// ErrValidationDeclined signals a local precondition failure; no
	// network call was attempted.
	ErrValidationDeclined = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_DECLINED",
		"Request preconditions not met",
		"",
	)

	// ErrBusinessNotSet is a specialization of validation decline for
	// operations that need a resolved business location first.
	ErrBusinessNotSet = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_DECLINED",
		"No business location has been set",
		"",
	)

	// ErrPresetNotFound is returned when a filter preset id is unknown.
	ErrPresetNotFound = NewBaseError(
		http.StatusNotFound,
		"PRESET_NOT_FOUND",
		"Filter preset not found",
		"",
	)

	// ErrOrderNotFound is returned when no current order exists.
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)
)
