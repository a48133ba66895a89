package providers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/config"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/llm/providers"
)

func TestRegister_Ollama(t *testing.T) {
	providers.Register()

	c, err := llm.NewClient(context.Background(), &config.LLMConfig{Provider: "ollama"})

	require.NoError(t, err)
	assert.Equal(t, "ollama/gemma3:4b", c.Name())
}

func TestRegister_HostedProvidersNeedKeys(t *testing.T) {
	providers.Register()

	for _, name := range []string{"openai", "claude", "gemini"} {
		t.Run(name, func(t *testing.T) {
			c, err := llm.NewClient(context.Background(), &config.LLMConfig{Provider: name})
			assert.Nil(t, c)
			assert.ErrorContains(t, err, "api key is required")
		})
	}
}

func TestRegister_WithKeys(t *testing.T) {
	providers.Register()

	c, err := llm.NewClient(context.Background(), &config.LLMConfig{Provider: "CLAUDE", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "claude/claude-sonnet-4-20250514", c.Name())

	c, err = llm.NewClient(context.Background(), &config.LLMConfig{Provider: "openai", APIKey: "k", Model: "gpt-4.1"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4.1", c.Name())
}
