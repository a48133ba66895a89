package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"pdfcheck/internal/port"
)

// circuitState tracks rate-limit backoff for a single client.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpen(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackClient tries clients in order. A client that reported a rate
// limit is skipped until its retry time has passed.
type FallbackClient struct {
	clients  []port.ModelClient
	circuits []*circuitState
	logger   *zap.Logger
	now      func() time.Time
}

// NewFallbackClient creates a FallbackClient over an ordered list of clients.
func NewFallbackClient(logger *zap.Logger, clients ...port.ModelClient) *FallbackClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	circuits := make([]*circuitState, len(clients))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackClient{
		clients:  clients,
		circuits: circuits,
		logger:   logger.Named("llm.fallback"),
		now:      time.Now,
	}
}

// Name lists the clients in the order they are tried.
func (f *FallbackClient) Name() string {
	names := make([]string, len(f.clients))
	for i, c := range f.clients {
		names[i] = c.Name()
	}
	return strings.Join(names, " > ")
}

// Complete returns the first successful reply.
func (f *FallbackClient) Complete(ctx context.Context, prompt string) (string, error) {
	now := f.now()
	var lastErr error
	var earliestReset time.Time

	for i, c := range f.clients {
		if resetAt, open := f.circuits[i].isOpen(now); open {
			f.logger.Debug("skipping rate-limited model", zap.String("model", c.Name()), zap.Time("until", resetAt))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		out, err := c.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", err
		}

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		}
		f.logger.Warn("model failed, trying next", zap.String("model", c.Name()), zap.Error(err))
	}

	if lastErr == nil {
		// every client was skipped
		retryAfter := earliestReset.Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return "", NewModelInvocationError(f.Name(),
			NewRateLimitError("all", fmt.Errorf("all models rate limited"), retryAfter))
	}
	return "", lastErr
}

// Close closes every client that holds resources.
func (f *FallbackClient) Close() error {
	var errs []error
	for _, c := range f.clients {
		if closer, ok := c.(interface{ Close() error }); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
