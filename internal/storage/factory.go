// Package storage selects the KVStore backend for history and saved checklists.
package storage

import (
	"context"
	"fmt"

	"pdfcheck/internal/config"
	"pdfcheck/internal/port"
	"pdfcheck/internal/storage/file"
	"pdfcheck/internal/storage/memory"
	"pdfcheck/internal/storage/redis"
	"pdfcheck/internal/storage/s3"
)

// New creates the backend named by cfg.Backend: "memory", "file", "s3" or "redis".
func New(ctx context.Context, cfg *config.StorageConfig) (port.KVStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return memory.NewStore(), nil
	case "file":
		st, err := file.NewStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "s3":
		st, err := s3.NewStore(ctx, &cfg.S3)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "redis":
		st, err := redis.NewStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
