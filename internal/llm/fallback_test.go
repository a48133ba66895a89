package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/config"
	"pdfcheck/internal/domain"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/port"
	"pdfcheck/mocks"
)

func namedClient(name string) *mocks.MockModelClient {
	c := new(mocks.MockModelClient)
	c.On("Name").Return(name).Maybe()
	return c
}

func TestFallbackClient_PrimarySucceeds(t *testing.T) {
	primary, secondary := namedClient("ollama/gemma3:4b"), namedClient("openai/gpt-4o-mini")
	primary.On("Complete", mock.Anything, "p").Return("ok", nil)

	f := llm.NewFallbackClient(nil, primary, secondary)
	out, err := f.Complete(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "ollama/gemma3:4b > openai/gpt-4o-mini", f.Name())
	secondary.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestFallbackClient_FallsBackOnError(t *testing.T) {
	primary, secondary := namedClient("a"), namedClient("b")
	primary.On("Complete", mock.Anything, "p").Return("", llm.NewModelInvocationError("a", errors.New("connection refused")))
	secondary.On("Complete", mock.Anything, "p").Return("from b", nil)

	out, err := llm.NewFallbackClient(nil, primary, secondary).Complete(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "from b", out)
}

func TestFallbackClient_AllFail(t *testing.T) {
	primary, secondary := namedClient("a"), namedClient("b")
	primary.On("Complete", mock.Anything, "p").Return("", errors.New("a down"))
	last := llm.NewModelInvocationError("b", errors.New("b down"))
	secondary.On("Complete", mock.Anything, "p").Return("", last)

	_, err := llm.NewFallbackClient(nil, primary, secondary).Complete(context.Background(), "p")

	assert.Equal(t, last, err)
}

func TestFallbackClient_SkipsRateLimitedClient(t *testing.T) {
	primary, secondary := namedClient("a"), namedClient("b")
	primary.On("Complete", mock.Anything, "p").
		Return("", llm.NewModelInvocationError("a", llm.NewRateLimitError("a", errors.New("429"), time.Minute))).Once()
	secondary.On("Complete", mock.Anything, "p").Return("from b", nil).Twice()

	f := llm.NewFallbackClient(nil, primary, secondary)
	for i := 0; i < 2; i++ {
		out, err := f.Complete(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "from b", out)
	}
	primary.AssertNumberOfCalls(t, "Complete", 1)
}

func TestFallbackClient_AllRateLimited(t *testing.T) {
	only := namedClient("a")
	only.On("Complete", mock.Anything, "p").
		Return("", llm.NewModelInvocationError("a", llm.NewRateLimitError("a", errors.New("429"), time.Minute))).Once()

	f := llm.NewFallbackClient(nil, only)
	_, err := f.Complete(context.Background(), "p")
	require.Error(t, err)

	_, err = f.Complete(context.Background(), "p")
	var rlErr *llm.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "all", rlErr.Provider)
	assert.True(t, errors.Is(err, domain.ErrModelInvocation))
	only.AssertNumberOfCalls(t, "Complete", 1)
}

func TestFallbackClient_StopsOnCancelledContext(t *testing.T) {
	primary, secondary := namedClient("a"), namedClient("b")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	primary.On("Complete", mock.Anything, "p").Return("", context.Canceled)

	_, err := llm.NewFallbackClient(nil, primary, secondary).Complete(ctx, "p")

	assert.ErrorIs(t, err, context.Canceled)
	secondary.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestNewClientWithFallback(t *testing.T) {
	llm.RegisterProvider("fake-primary", func(_ context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		return namedClient("fake-primary/" + cfg.Model), nil
	})
	llm.RegisterProvider("fake-secondary", func(_ context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		return namedClient("fake-secondary/" + cfg.Model), nil
	})

	single, err := llm.NewClientWithFallback(context.Background(), &config.LLMConfig{Provider: "fake-primary", Model: "m"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fake-primary/m", single.Name())

	chained, err := llm.NewClientWithFallback(context.Background(), &config.LLMConfig{
		Provider: "fake-primary", Model: "m",
		Fallback: &config.LLMConfig{Provider: "fake-secondary", Model: "n"},
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &llm.FallbackClient{}, chained)
	assert.Equal(t, "fake-primary/m > fake-secondary/n", chained.Name())

	_, err = llm.NewClientWithFallback(context.Background(), &config.LLMConfig{
		Provider: "fake-primary", Fallback: &config.LLMConfig{Provider: "nope"},
	}, nil)
	assert.ErrorContains(t, err, "unknown llm provider: nope")
}
