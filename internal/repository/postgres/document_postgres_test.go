package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"servidoc/internal/model"
	"servidoc/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var documentCols = []string{"id", "national_id", "document_type", "storage_path", "size", "content_type", "registered_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:           "test-uuid",
		NationalID:   "123.456.789-00",
		DocumentType: "RG",
		StoragePath:  "documentos/123.456.789-00_RG_x.pdf",
		Size:         123,
		ContentType:  "application/pdf",
		RegisteredAt: now,
	}

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, doc.NationalID, doc.DocumentType, doc.StoragePath, doc.Size, doc.ContentType, doc.RegisteredAt)

	mock.ExpectQuery("INSERT INTO documentos").
		WithArgs(doc.ID, doc.NationalID, doc.DocumentType, doc.StoragePath, doc.Size, doc.ContentType, doc.RegisteredAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.NationalID, result.NationalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow("test-id", "123.456.789-00", "RG", "documentos/file.pdf", 100, "application/pdf", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documentos WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documentos WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListByNationalID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow("id-1", "123.456.789-00", "RG", "documentos/a.pdf", 100, "application/pdf", time.Now()).
			AddRow("id-2", "123.456.789-00", "CNH", "documentos/b.pdf", 200, "application/pdf", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documentos WHERE national_id = (.+) ORDER BY registered_at, id").
			WithArgs("123.456.789-00").
			WillReturnRows(rows)

		items, err := repo.ListByNationalID(ctx, "123.456.789-00")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "id-1", items[0].ID)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documentos WHERE national_id = (.+) ORDER BY registered_at, id").
			WithArgs("999.999.999-99").
			WillReturnRows(sqlmock.NewRows(documentCols))

		items, err := repo.ListByNationalID(ctx, "999.999.999-99")

		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})
}

func TestDocumentPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(documentCols).
		AddRow("id-1", "123.456.789-00", "RG", "documentos/a.pdf", 100, "application/pdf", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM documentos ORDER BY registered_at, id").
		WillReturnRows(rows)

	items, err := repo.ListAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
