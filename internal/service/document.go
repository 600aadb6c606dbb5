package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"servidoc/internal/model"
	"servidoc/internal/repository"
	"servidoc/internal/storage"
)

// storagePrefix is the key prefix for uploaded document blobs.
const storagePrefix = "documentos"

// DocumentService defines the document use cases: upload, listing and
// download. The owning servidor is referenced by national ID and is not
// required to exist when a document is written.
type DocumentService interface {
	// Upload streams the payload to the blob store under a name derived from
	// the national ID, document type and upload time, then records the
	// document metadata. If the metadata write fails the blob is removed
	// again. Fails with ErrMissingFields or ErrEmptyFile on bad input.
	Upload(ctx context.Context, nationalID, documentType string, r io.Reader, originalFilename, contentType string, size int64) (*model.Document, error)

	// ListByNationalID returns every document owned by the national ID in
	// insertion order. Fails with ErrMissingFields when the ID is empty; an
	// empty result is not an error.
	ListByNationalID(ctx context.Context, nationalID string) ([]model.Document, error)

	// ListAll returns every document record in insertion order.
	ListAll(ctx context.Context) ([]model.Document, error)

	// Fetch returns a readable stream of the blob for the document with the
	// given id, together with its record. Fails with ErrNotFound when either
	// the record or the underlying blob is missing — the two causes are not
	// distinguished for the caller.
	Fetch(ctx context.Context, id string) (io.ReadCloser, *model.Document, error)
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
	now   func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo, now: time.Now}
}

func (s *documentService) Upload(ctx context.Context, nationalID, documentType string, r io.Reader, originalFilename, contentType string, size int64) (*model.Document, error) {
	nationalID = strings.TrimSpace(nationalID)
	documentType = strings.TrimSpace(documentType)
	if nationalID == "" || documentType == "" {
		return nil, ErrMissingFields
	}
	if r == nil || size == 0 {
		return nil, ErrEmptyFile
	}

	now := s.now().UTC()
	key := path.Join(storagePrefix, blobName(nationalID, documentType, now, originalFilename))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:           uuid.New().String(),
		NationalID:   nationalID,
		DocumentType: documentType,
		StoragePath:  objInfo.Key,
		Size:         objInfo.Size,
		ContentType:  contentType,
		RegisteredAt: now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the blob so storage and records stay consistent.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) ListByNationalID(ctx context.Context, nationalID string) ([]model.Document, error) {
	if strings.TrimSpace(nationalID) == "" {
		return nil, ErrMissingFields
	}
	return s.repo.ListByNationalID(ctx, nationalID)
}

func (s *documentService) ListAll(ctx context.Context) ([]model.Document, error) {
	return s.repo.ListAll(ctx)
}

func (s *documentService) Fetch(ctx context.Context, id string) (io.ReadCloser, *model.Document, error) {
	if id == "" {
		return nil, nil, ErrMissingFields
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	// The blob can be gone even though the record exists (external removal);
	// check first so the caller sees the same not-found either way. The
	// existence check and the open are not atomic.
	ok, err := s.store.Exists(ctx, doc.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrNotFound
	}

	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return rc, doc, nil
}

// blobName builds the storage file name: nationalID_documentType_timestamp
// plus the upload's original extension, defaulting to ".pdf" when the name
// carries none. Characters that are unsafe in a path are replaced.
func blobName(nationalID, documentType string, ts time.Time, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	if ext == "" {
		ext = ".pdf"
	}
	base := fmt.Sprintf("%s_%s_%s", nationalID, documentType, ts.Format(time.RFC3339))
	return sanitizeName(base) + sanitizeName(ext)
}

// sanitizeName keeps letters, digits, dots, dashes and underscores and
// replaces everything else with a dash.
func sanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
