package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicate        = errors.New("duplicate entry")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// Keyword resolution outcomes. Resolve reports all three as a plain miss;
// ResolveErr wraps one of these so callers can tell them apart.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoMatch      = errors.New("no matching keyword")
	ErrAmbiguous    = errors.New("ambiguous abbreviation")
)
