package postgres

import (
	"context"
	"database/sql"
	"errors"

	"servidoc/internal/model"
	"servidoc/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documentos (id, national_id, document_type, storage_path, size, content_type, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, national_id, document_type, storage_path, size, content_type, registered_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.NationalID,
		doc.DocumentType,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
		doc.RegisteredAt,
	)
	var out model.Document
	if err := scanDocument(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT id, national_id, document_type, storage_path, size, content_type, registered_at
		FROM documentos
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var d model.Document
	if err := scanDocument(row, &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByNationalID returns documents owned by the given national ID in
// insertion order.
func (r *DocumentPostgres) ListByNationalID(ctx context.Context, nationalID string) ([]model.Document, error) {
	const q = `
		SELECT id, national_id, document_type, storage_path, size, content_type, registered_at
		FROM documentos
		WHERE national_id = $1
		ORDER BY registered_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, nationalID)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

// ListAll returns every document record in insertion order.
func (r *DocumentPostgres) ListAll(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT id, national_id, document_type, storage_path, size, content_type, registered_at
		FROM documentos
		ORDER BY registered_at, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, d *model.Document) error {
	return row.Scan(
		&d.ID,
		&d.NationalID,
		&d.DocumentType,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.RegisteredAt,
	)
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
