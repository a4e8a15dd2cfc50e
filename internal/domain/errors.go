package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Caller-facing error categories. Concrete rule violations wrap one of these,
// so errors.Is matches both the specific error and its category.
var (
	ErrValidation          = errors.New("validation error")
	ErrProviderUnavailable = errors.New("provider is not available at the requested time")
	ErrAppointmentConflict = errors.New("time slot is already booked")
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// Stable error codes returned to API clients
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	CodeAppointmentConflict = "APPOINTMENT_CONFLICT"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// ErrorCode maps an error to its stable code. Unknown errors are internal.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrProviderUnavailable):
		return CodeProviderUnavailable
	case errors.Is(err, ErrAppointmentConflict):
		return CodeAppointmentConflict
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	default:
		return CodeInternal
	}
}

// HTTPStatus maps an error to the HTTP status code used for it
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeValidation, CodeProviderUnavailable, CodeInvalidTransition:
		return http.StatusBadRequest
	case CodeAppointmentConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsCallerError reports whether err belongs to the caller-facing taxonomy
func IsCallerError(err error) bool {
	return ErrorCode(err) != CodeInternal
}

// Message returns the human-readable part of a caller-facing error:
// "validation error: appointment must be at least 15 minutes" becomes
// "appointment must be at least 15 minutes". Internal errors never expose detail.
func Message(err error) string {
	if !IsCallerError(err) {
		return "internal server error"
	}

	msg := err.Error()
	for _, category := range []error{ErrValidation, ErrProviderUnavailable, ErrAppointmentConflict, ErrNotFound, ErrInvalidTransition} {
		if prefix := category.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
