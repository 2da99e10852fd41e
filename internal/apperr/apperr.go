// Package apperr defines the error kinds surfaced by services and their
// HTTP status mapping. Handlers translate any error chain that wraps one
// of these sentinels; everything else maps to 500.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrStorage        = errors.New("storage error")
)

// Status maps an error chain to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the whole operation may be safely retried.
// Only transient storage failures qualify; validation errors are terminal.
func Retryable(err error) bool {
	return errors.Is(err, ErrStorage)
}
