package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"servidoc/internal/model"
	"servidoc/internal/repository"
)

// ServidorInput carries the seven mandatory business fields of a servidor
// registration. Presence of Active is validated at the handler (a JSON bool
// cannot distinguish false from absent).
type ServidorInput struct {
	Name               string
	NationalID         string
	RegistrationNumber string
	OrgCode            string
	Active             bool
	JobTitle           string
	Department         string
}

// ServidorService defines the servidor record use cases.
type ServidorService interface {
	// Create registers a servidor. Fails with ErrMissingFields when any text
	// field is empty, ErrNationalIDTaken or ErrRegistrationTaken on a
	// uniqueness conflict.
	Create(ctx context.Context, in ServidorInput) (*model.Servidor, error)

	// Search returns records matching the sparse filter, predicates
	// AND-combined, in insertion order. An empty filter returns all records;
	// an empty result is not an error at this layer.
	Search(ctx context.Context, f repository.ServidorFilter) ([]model.Servidor, error)
}

type servidorService struct {
	repo repository.ServidorRepository
}

// NewServidorService constructs a new ServidorService.
func NewServidorService(repo repository.ServidorRepository) ServidorService {
	return &servidorService{repo: repo}
}

func (s *servidorService) Create(ctx context.Context, in ServidorInput) (*model.Servidor, error) {
	for _, v := range []string{in.Name, in.NationalID, in.RegistrationNumber, in.OrgCode, in.JobTitle, in.Department} {
		if strings.TrimSpace(v) == "" {
			return nil, ErrMissingFields
		}
	}

	rec := &model.Servidor{
		ID:                 uuid.New().String(),
		Name:               strings.TrimSpace(in.Name),
		NationalID:         strings.TrimSpace(in.NationalID),
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		OrgCode:            strings.TrimSpace(in.OrgCode),
		Active:             in.Active,
		JobTitle:           strings.TrimSpace(in.JobTitle),
		Department:         strings.TrimSpace(in.Department),
		CreatedAt:          time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateNationalID):
			return nil, ErrNationalIDTaken
		case errors.Is(err, repository.ErrDuplicateRegistration):
			return nil, ErrRegistrationTaken
		}
		return nil, err
	}
	return stored, nil
}

func (s *servidorService) Search(ctx context.Context, f repository.ServidorFilter) ([]model.Servidor, error) {
	return s.repo.Search(ctx, f)
}
