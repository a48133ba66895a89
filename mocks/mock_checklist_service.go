package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

// MockChecklistService is a mock implementation of service.ChecklistService.
type MockChecklistService struct {
	mock.Mock
}

func (m *MockChecklistService) List(ctx context.Context) ([]domain.SavedChecklist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedChecklist), args.Error(1)
}

func (m *MockChecklistService) Save(ctx context.Context, input service.SaveChecklistInput) (*domain.SavedChecklist, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedChecklist), args.Error(1)
}

func (m *MockChecklistService) Get(ctx context.Context, id uuid.UUID) (*domain.SavedChecklist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedChecklist), args.Error(1)
}

func (m *MockChecklistService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChecklistService) ImportText(text string) []string {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockChecklistService) ExportText(items []string) (string, error) {
	args := m.Called(items)
	return args.String(0), args.Error(1)
}
