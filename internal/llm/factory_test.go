package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/config"
	"pdfcheck/internal/domain"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/port"
)

// stubClient is a minimal ModelClient for testing the factory.
type stubClient struct {
	model string
}

func (s *stubClient) Complete(_ context.Context, _ string) (string, error) { return "", nil }
func (s *stubClient) Name() string                                         { return s.model }

func TestFactory_RegisterAndCreate(t *testing.T) {
	llm.RegisterProvider("Test-Provider", func(_ context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		return &stubClient{model: cfg.Model}, nil
	})

	c, err := llm.NewClient(context.Background(), &config.LLMConfig{Provider: "test-provider", Model: "m1"})

	require.NoError(t, err)
	assert.Equal(t, "m1", c.Name())
}

func TestFactory_UnknownProvider(t *testing.T) {
	c, err := llm.NewClient(context.Background(), &config.LLMConfig{Provider: "nonexistent-provider-xyz"})

	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := llm.WithTimeout(context.Background(), 0)
	defer cancel()
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	ctx, cancel = llm.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	_, hasDeadline = ctx.Deadline()
	assert.True(t, hasDeadline)
}

func TestModelInvocationError(t *testing.T) {
	backend := errors.New("dial tcp 127.0.0.1:11434: connection refused")
	err := llm.NewModelInvocationError("ollama", backend)

	assert.Equal(t, "failed to call ollama model: dial tcp 127.0.0.1:11434: connection refused", err.Error())
	assert.True(t, errors.Is(err, domain.ErrModelInvocation))
	assert.True(t, errors.Is(err, backend))
}

func TestModelInvocationError_NilCause(t *testing.T) {
	err := llm.NewModelInvocationError("ollama", nil)
	assert.Contains(t, err.Error(), "unknown error")
}

func TestAsModelInvocationError(t *testing.T) {
	inner := llm.NewModelInvocationError("claude", errors.New("overloaded"))
	wrapped := errors.Join(errors.New("context"), inner)

	assert.Same(t, inner, llm.AsModelInvocationError("other", wrapped))

	fresh := llm.AsModelInvocationError("openai", errors.New("boom"))
	assert.Equal(t, "openai", fresh.Provider)
}
