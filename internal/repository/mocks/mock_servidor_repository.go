package mocks

import (
	"context"

	"servidoc/internal/model"
	"servidoc/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockServidorRepository struct {
	mock.Mock
}

func (m *MockServidorRepository) Create(ctx context.Context, s *model.Servidor) (*model.Servidor, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Servidor), args.Error(1)
}

func (m *MockServidorRepository) Search(ctx context.Context, f repository.ServidorFilter) ([]model.Servidor, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Servidor), args.Error(1)
}
