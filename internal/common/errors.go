package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound        = errors.New("requested resource not found")
	ErrUnauthenticated = errors.New("not authorized")
	ErrForbidden       = errors.New("forbidden access")
	ErrValidation      = errors.New("validation failed")
	ErrBadRequest      = errors.New("bad request")
	ErrInternalServer  = errors.New("internal server error")

	ErrDuplicateEmail    = errors.New("an account with this email already exists")
	ErrInvalidCredential = errors.New("incorrect password")
	ErrLegacyAccount     = errors.New("this account was created before password login was enabled")

	ErrDuplicateRSVP    = errors.New("already RSVPed to this event")
	ErrCapacityExceeded = errors.New("event is at full capacity")

	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("rate limit reached")
	ErrServiceUnavailable = errors.New("service is not configured")
	ErrUpstream           = errors.New("upstream service error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
// Business-rule failures (duplicate email/RSVP, capacity) deliberately map
// to 400, not 409, matching the API contract the admin console expects.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrInvalidCredential),
		errors.Is(err, ErrLegacyAccount):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateRSVP),
		errors.Is(err, ErrCapacityExceeded):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrServiceUnavailable), errors.Is(err, ErrUpstream):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
