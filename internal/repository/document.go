package repository

import (
	"context"

	"servidoc/internal/model"
)

// DocumentRepository defines data access for document metadata using SQL
// queries only. No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record.
	// The caller provides ID and RegisteredAt; the row is returned as stored.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByNationalID returns every document owned by the given national ID
	// in insertion order (registered_at, then id). Empty result is not an error.
	ListByNationalID(ctx context.Context, nationalID string) ([]model.Document, error)

	// ListAll returns every document record in insertion order.
	ListAll(ctx context.Context) ([]model.Document, error)
}
