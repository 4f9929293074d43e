package usecase

import "errors"

var (
	// ErrInvalidInput marks caller mistakes that map to HTTP 400.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks missing resources that map to HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrDependencyUnavailable marks upstream outages that map to HTTP 500.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
