package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/port"
)

// ChecklistsKey is the storage key of saved checklists.
const ChecklistsKey = "pdf-checklists"

// ChecklistStore holds named checklists, newest first.
type ChecklistStore struct {
	list *listStore[domain.SavedChecklist]
	now  func() time.Time
}

// NewChecklistStore creates a store backed by kv.
func NewChecklistStore(kv port.KVStore, logger *zap.Logger) *ChecklistStore {
	return &ChecklistStore{
		list: newListStore(kv, ChecklistsKey, logger,
			func(c *domain.SavedChecklist) uuid.UUID { return c.ID },
			func(c *domain.SavedChecklist) int64 { return c.Timestamp },
		),
		now: time.Now,
	}
}

// Load (re)reads the persisted checklists.
func (s *ChecklistStore) Load(ctx context.Context) error {
	return s.list.load(ctx, true)
}

// Save stores a new checklist under a fresh id and returns it.
func (s *ChecklistStore) Save(ctx context.Context, name string, items []string) (*domain.SavedChecklist, error) {
	cl := domain.SavedChecklist{
		ID:        uuid.New(),
		Name:      name,
		Items:     append([]string(nil), items...),
		Timestamp: s.now().UnixMilli(),
	}
	if err := s.list.prepend(ctx, cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// List returns all saved checklists, newest first.
func (s *ChecklistStore) List(ctx context.Context) ([]domain.SavedChecklist, error) {
	return s.list.list(ctx)
}

// Get returns the checklist with the given id, or domain.ErrNotFound.
func (s *ChecklistStore) Get(ctx context.Context, id uuid.UUID) (*domain.SavedChecklist, error) {
	return s.list.get(ctx, id)
}

// Delete removes a checklist, returning domain.ErrNotFound for an unknown id.
func (s *ChecklistStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.list.remove(ctx, id)
}

// Subscribe registers fn to run after every change.
func (s *ChecklistStore) Subscribe(fn func([]domain.SavedChecklist)) func() {
	return s.list.subscribe(fn)
}
