package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/port"
)

// HistoryKey is the storage key of the analysis history.
const HistoryKey = "pdf-history"

// HistoryState is what subscribers observe.
type HistoryState struct {
	History []domain.HistoryItem
	Loading bool
}

// HistoryStore holds past analyses, newest first.
type HistoryStore struct {
	list *listStore[domain.HistoryItem]
}

// NewHistoryStore creates a store backed by kv. Nothing is read until Load
// or the first access.
func NewHistoryStore(kv port.KVStore, logger *zap.Logger) *HistoryStore {
	return &HistoryStore{
		list: newListStore(kv, HistoryKey, logger,
			func(h *domain.HistoryItem) uuid.UUID { return h.ID },
			func(h *domain.HistoryItem) int64 { return h.Timestamp },
		),
	}
}

// Load (re)reads the persisted history.
func (s *HistoryStore) Load(ctx context.Context) error {
	return s.list.load(ctx, true)
}

// Add records a completed analysis.
func (s *HistoryStore) Add(ctx context.Context, item domain.HistoryItem) error {
	return s.list.prepend(ctx, item)
}

// Get returns the entry with the given id, or domain.ErrNotFound.
func (s *HistoryStore) Get(ctx context.Context, id uuid.UUID) (*domain.HistoryItem, error) {
	return s.list.get(ctx, id)
}

// List returns all entries, newest first.
func (s *HistoryStore) List(ctx context.Context) ([]domain.HistoryItem, error) {
	return s.list.list(ctx)
}

// Delete removes an entry, returning domain.ErrNotFound for an unknown id.
func (s *HistoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.list.remove(ctx, id)
}

// Snapshot returns the current state without triggering a load.
func (s *HistoryStore) Snapshot() HistoryState {
	s.list.mu.RLock()
	defer s.list.mu.RUnlock()
	return HistoryState{History: s.list.snapshotLocked(), Loading: !s.list.loaded}
}

// Subscribe registers fn to run after every change. The returned function
// unsubscribes and is safe to call more than once.
func (s *HistoryStore) Subscribe(fn func(HistoryState)) func() {
	return s.list.subscribe(func(items []domain.HistoryItem) {
		fn(HistoryState{History: items})
	})
}
