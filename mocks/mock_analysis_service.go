package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) GenerateChecklist(ctx context.Context, dataURI string) (*service.ChecklistOutput, error) {
	args := m.Called(ctx, dataURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChecklistOutput), args.Error(1)
}

func (m *MockAnalysisService) RunAnalysis(ctx context.Context, input service.RunAnalysisInput) (*domain.HistoryItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryItem), args.Error(1)
}
