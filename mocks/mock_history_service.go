package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/export"
)

// MockHistoryService is a mock implementation of service.HistoryService.
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context) ([]domain.HistoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryItem), args.Error(1)
}

func (m *MockHistoryService) Get(ctx context.Context, id uuid.UUID) (*domain.HistoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryItem), args.Error(1)
}

func (m *MockHistoryService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHistoryService) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*export.File, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.File), args.Error(1)
}
