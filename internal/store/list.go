// Package store keeps analysis history and saved checklists in memory,
// persisted as JSON arrays in a KVStore and observable through subscriptions.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/port"
)

// listStore is a newest-first list of records persisted under one key.
type listStore[T any] struct {
	kv      port.KVStore
	key     string
	logger  *zap.Logger
	idOf    func(*T) uuid.UUID
	stampOf func(*T) int64

	mu      sync.RWMutex
	items   []T
	loaded  bool
	subs    map[uint64]func([]T)
	nextSub uint64
}

func newListStore[T any](kv port.KVStore, key string, logger *zap.Logger, idOf func(*T) uuid.UUID, stampOf func(*T) int64) *listStore[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &listStore[T]{
		kv:      kv,
		key:     key,
		logger:  logger.With(zap.String("key", key)),
		idOf:    idOf,
		stampOf: stampOf,
		subs:    make(map[uint64]func([]T)),
	}
}

// load replaces the in-memory list with the persisted one. A value that
// cannot be decoded is logged and treated as an empty list. Without force
// an already loaded list is kept.
func (s *listStore[T]) load(ctx context.Context, force bool) error {
	s.mu.Lock()
	if s.loaded && !force {
		s.mu.Unlock()
		return nil
	}
	data, err := s.kv.Get(ctx, s.key)
	var items []T
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		s.mu.Unlock()
		return fmt.Errorf("loading %s: %w", s.key, err)
	default:
		if err := json.Unmarshal(data, &items); err != nil {
			s.logger.Warn("discarding unreadable stored list", zap.Error(err))
			items = nil
		}
	}
	s.sortItems(items)
	s.items = items
	s.loaded = true
	snap, subs := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

func (s *listStore[T]) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.load(ctx, false)
}

func (s *listStore[T]) list(ctx context.Context) ([]T, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(), nil
}

func (s *listStore[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

// mutate applies fn to a copy of the list, persists the result and only
// then publishes it. On any error the in-memory list is left untouched.
func (s *listStore[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	next, err := fn(s.snapshotLocked())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.sortItems(next)

	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = next
	snap, subs := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// persist writes items under the store key. An empty list removes the key.
func (s *listStore[T]) persist(ctx context.Context, items []T) error {
	if len(items) == 0 {
		if err := s.kv.Delete(ctx, s.key); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("clearing %s: %w", s.key, err)
		}
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("saving %s: %w", s.key, err)
	}
	return nil
}

func (s *listStore[T]) prepend(ctx context.Context, item T) error {
	return s.mutate(ctx, func(items []T) ([]T, error) {
		return append([]T{item}, items...), nil
	})
}

func (s *listStore[T]) remove(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if s.idOf(&items[i]) == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func (s *listStore[T]) subscribe(fn func([]T)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// sortItems orders newest first. Ties keep their relative order, so a
// freshly prepended record stays ahead of older ones with the same stamp.
func (s *listStore[T]) sortItems(items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return s.stampOf(&items[i]) > s.stampOf(&items[j])
	})
}

func (s *listStore[T]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *listStore[T]) listenersLocked() []func([]T) {
	out := make([]func([]T), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// notify runs outside the lock; every listener gets its own copy.
func notify[T any](subs []func([]T), snap []T) {
	for _, fn := range subs {
		cp := make([]T, len(snap))
		copy(cp, snap)
		fn(cp)
	}
}
