// Package llm selects and constructs the text-generation backend.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"pdfcheck/internal/config"
	"pdfcheck/internal/port"
)

// ProviderFactory creates a ModelClient from LLM configuration.
type ProviderFactory func(ctx context.Context, cfg *config.LLMConfig) (port.ModelClient, error)

// registry of provider factories, populated via RegisterProvider at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[strings.ToLower(name)] = factory
}

// NewClient creates a ModelClient for cfg.Provider using the registered factory.
func NewClient(ctx context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
	factory, ok := providers[strings.ToLower(cfg.Provider)]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(ctx, cfg)
}

// NewClientWithFallback creates the client for cfg and, when cfg.Fallback
// names a provider, chains the fallback client behind it.
func NewClientWithFallback(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (port.ModelClient, error) {
	primary, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Fallback == nil || cfg.Fallback.Provider == "" {
		return primary, nil
	}
	secondary, err := NewClient(ctx, cfg.Fallback)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return NewFallbackClient(logger, primary, secondary), nil
}

// WithTimeout bounds a single model call. A zero timeout leaves ctx unchanged.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// DisplayName formats a provider/model pair for logs and history records.
func DisplayName(provider, model string) string {
	return provider + "/" + model
}
