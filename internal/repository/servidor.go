package repository

import (
	"context"

	"servidoc/internal/model"
)

// ServidorFilter is a sparse set of optional predicates combined with AND.
// Zero-value fields are ignored; a zero-value filter matches every record.
type ServidorFilter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// NationalID, RegistrationNumber and OrgCode match exactly.
	NationalID         string
	RegistrationNumber string
	OrgCode            string
}

// ServidorRepository defines data access for servidor records.
type ServidorRepository interface {
	// Create inserts a new servidor row. It returns ErrDuplicateNationalID or
	// ErrDuplicateRegistration when the corresponding unique constraint is
	// violated.
	Create(ctx context.Context, s *model.Servidor) (*model.Servidor, error)

	// Search returns records matching the filter in insertion order
	// (created_at, then id). An empty result is not an error.
	Search(ctx context.Context, f ServidorFilter) ([]model.Servidor, error)
}
