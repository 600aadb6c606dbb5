package repository

import "errors"

// Sentinel errors returned by repository implementations. Uniqueness
// violations are detected from the storage engine's constraint errors, never
// from a pre-check, so concurrent duplicate inserts are race-free.
var (
	ErrNotFound              = errors.New("record not found")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicateNationalID   = errors.New("national id already registered")
	ErrDuplicateRegistration = errors.New("registration number already registered")
)
