package apperr

import "errors"

// Sentinel error kinds. Services wrap these with fmt.Errorf("...: %w", ...)
// and the response layer translates each kind to an HTTP status.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrBadRequest   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicate    = errors.New("duplicate row")
	ErrTokenExpired = errors.New("token has expired")
	ErrDatabase     = errors.New("database error")
)
