package mocks

import (
	"context"

	"servidoc/internal/model"
	"servidoc/internal/repository"
	"servidoc/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockServidorService struct {
	mock.Mock
}

func (m *MockServidorService) Create(ctx context.Context, in service.ServidorInput) (*model.Servidor, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Servidor), args.Error(1)
}

func (m *MockServidorService) Search(ctx context.Context, f repository.ServidorFilter) ([]model.Servidor, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Servidor), args.Error(1)
}
