// Package errors provides the error handling primitives used across the
// GuardBill application. Errors are built fluently, marked with a well-known
// code, and rendered to API consumers by the rest middleware.
package errors

import (
	"errors"
	"net/http"
)

// Well-known error codes. Every error that crosses a service boundary is
// marked with exactly one of these so the transport layer can map it to an
// HTTP status without inspecting messages.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrPermissionDenied = errors.New("permission_denied")
	ErrDatabase         = errors.New("database_error")
	ErrHTTPClient       = errors.New("http_client_error")
	ErrInternal         = errors.New("internal_error")
)

// InternalError is the concrete error type produced by the builder.
type InternalError struct {
	// Code is one of the marker errors above.
	Code error

	// Message is the internal developer-facing message.
	Message string

	// Hint is a safe, user-facing explanation of what went wrong.
	Hint string

	// ReportableDetails are safe structured fields included in API responses.
	ReportableDetails map[string]any

	// Cause is the wrapped underlying error, if any.
	Cause error
}

func (e *InternalError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code.Error()
}

func (e *InternalError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

// Is reports whether the error is marked with the given code, directly or
// through its cause chain.
func (e *InternalError) Is(target error) bool {
	if e.Code == target {
		return true
	}
	return errors.Is(e.Cause, target)
}

// IsValidation reports whether err is marked as a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is marked as a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is marked as an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// HTTPStatusFromErr maps a marked error to an HTTP status code.
func HTTPStatusFromErr(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
