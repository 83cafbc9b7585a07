package api

import "errors"

var (
	// Transport-level failure: the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// HTTP-level failures mapped from response status codes.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrServer       = errors.New("server error")

	// Anything else the mapping does not recognize.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
