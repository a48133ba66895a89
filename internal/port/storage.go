package port

import (
	"context"
)

// KVStore is a small key/value blob store holding JSON documents, one per key.
// Get returns domain.ErrNotFound when the key has never been written.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
