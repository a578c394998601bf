package internalerr

import "errors"

// Sentinel errors shared across the resolution packages. "No match" is
// never one of them; a query that resolves nothing returns the zero
// match, not an error.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")
)
