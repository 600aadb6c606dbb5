package service

import "errors"

// Sentinel errors shared by the services. Handlers translate these into HTTP
// statuses: missing/invalid input → 400, bad credentials → 401, uniqueness
// conflicts → 409, missing record or blob → 404.
var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidRole        = errors.New("role must be 'manager' or 'common'")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNationalIDTaken    = errors.New("national id already registered")
	ErrRegistrationTaken  = errors.New("registration number already registered")
	ErrEmptyFile          = errors.New("file payload is empty")
	ErrNotFound           = errors.New("record not found")
)
