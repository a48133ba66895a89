package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/export"
	"pdfcheck/internal/store"
)

// HistoryService exposes stored analyses.
type HistoryService interface {
	List(ctx context.Context) ([]domain.HistoryItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HistoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*export.File, error)
}

type historyService struct {
	history  *store.HistoryStore
	renderer *export.Renderer
}

// NewHistoryService creates a new HistoryService implementation.
func NewHistoryService(history *store.HistoryStore, renderer *export.Renderer) HistoryService {
	return &historyService{history: history, renderer: renderer}
}

func (s *historyService) List(ctx context.Context) ([]domain.HistoryItem, error) {
	items, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	return items, nil
}

func (s *historyService) Get(ctx context.Context, id uuid.UUID) (*domain.HistoryItem, error) {
	return s.history.Get(ctx, id)
}

func (s *historyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.history.Delete(ctx, id)
}

func (s *historyService) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*export.File, error) {
	if !format.IsValid() {
		return nil, domain.ErrUnsupportedExportFormat
	}
	item, err := s.history.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(item, format)
}
