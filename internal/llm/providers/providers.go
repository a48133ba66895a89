// Package providers registers every built-in model backend with the llm factory.
package providers

import (
	"context"

	"pdfcheck/internal/config"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/llm/claude"
	"pdfcheck/internal/llm/gemini"
	"pdfcheck/internal/llm/ollama"
	"pdfcheck/internal/llm/openai"
	"pdfcheck/internal/port"
)

// Register adds the ollama, openai, claude and gemini providers.
func Register() {
	llm.RegisterProvider("ollama", func(_ context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		return ollama.NewClient(cfg), nil
	})
	llm.RegisterProvider("openai", func(_ context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		c, err := openai.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
	llm.RegisterProvider("claude", func(_ context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		c, err := claude.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
	llm.RegisterProvider("gemini", func(ctx context.Context, cfg *config.LLMConfig) (port.ModelClient, error) {
		c, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
