package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/store"
)

// ChecklistExportFilename is the download name of an exported checklist.
const ChecklistExportFilename = "checklist.txt"

// SaveChecklistInput is the DTO for saving a checklist.
type SaveChecklistInput struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// ChecklistService manages saved checklists and their text form.
type ChecklistService interface {
	List(ctx context.Context) ([]domain.SavedChecklist, error)
	Save(ctx context.Context, input SaveChecklistInput) (*domain.SavedChecklist, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SavedChecklist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ImportText(text string) []string
	ExportText(items []string) (string, error)
}

type checklistService struct {
	checklists *store.ChecklistStore
}

// NewChecklistService creates a new ChecklistService implementation.
func NewChecklistService(checklists *store.ChecklistStore) ChecklistService {
	return &checklistService{checklists: checklists}
}

func (s *checklistService) List(ctx context.Context) ([]domain.SavedChecklist, error) {
	return s.checklists.List(ctx)
}

// Save trims the name and every item and drops blank items.
func (s *checklistService) Save(ctx context.Context, input SaveChecklistInput) (*domain.SavedChecklist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrChecklistNameRequired
	}
	items := trimAll(input.Items)
	if len(items) == 0 {
		return nil, domain.ErrEmptyChecklist
	}
	return s.checklists.Save(ctx, name, items)
}

func (s *checklistService) Get(ctx context.Context, id uuid.UUID) (*domain.SavedChecklist, error) {
	return s.checklists.Get(ctx, id)
}

func (s *checklistService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.checklists.Delete(ctx, id)
}

// ImportText reads one item per line.
func (s *checklistService) ImportText(text string) []string {
	return trimAll(strings.Split(text, "\n"))
}

// ExportText writes one item per line.
func (s *checklistService) ExportText(items []string) (string, error) {
	items = trimAll(items)
	if len(items) == 0 {
		return "", domain.ErrEmptyChecklist
	}
	return strings.Join(items, "\n"), nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
