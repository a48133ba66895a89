// Package openai implements port.ModelClient on the OpenAI chat completions
// API and on any server that speaks it, such as Ollama.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"pdfcheck/internal/config"
	"pdfcheck/internal/llm"
)

const defaultModel = "gpt-4o-mini"

// Client sends single-turn chat completions.
type Client struct {
	provider  string
	model     string
	maxTokens int
	timeout   time.Duration
	api       *goopenai.Client
}

// NewClient creates an OpenAI client from LLM configuration.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	return newClient("openai", cfg, cfg.BaseURL, cfg.APIKey, defaultModel), nil
}

// NewClientWithEndpoint creates a client pointing at a custom base URL (for
// testing and OpenAI-compatible servers).
func NewClientWithEndpoint(provider string, cfg *config.LLMConfig, baseURL string) *Client {
	return newClient(provider, cfg, baseURL, cfg.APIKey, defaultModel)
}

// NewCompatibleClient creates a client for an OpenAI-compatible server that
// ignores the API key.
func NewCompatibleClient(provider string, cfg *config.LLMConfig, baseURL, fallbackModel string) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = provider
	}
	return newClient(provider, cfg, baseURL, apiKey, fallbackModel)
}

func newClient(provider string, cfg *config.LLMConfig, baseURL, apiKey, fallbackModel string) *Client {
	conf := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	model := cfg.Model
	if model == "" {
		model = fallbackModel
	}
	return &Client{
		provider:  provider,
		model:     model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout(),
		api:       goopenai.NewClientWithConfig(conf),
	}
}

// Name returns the provider and model identifier.
func (c *Client) Name() string {
	return llm.DisplayName(c.provider, c.model)
}

// Complete sends the prompt as a single user message and returns the reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := llm.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role:    goopenai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
	if c.maxTokens > 0 {
		req.MaxTokens = c.maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", llm.NewModelInvocationError(c.provider, c.classify(err))
	}
	if len(resp.Choices) == 0 {
		return "", llm.NewModelInvocationError(c.provider, fmt.Errorf("no response choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

// classify marks HTTP 429 responses as rate limits.
func (c *Client) classify(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return llm.NewRateLimitError(c.provider, err, 0)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return llm.NewRateLimitError(c.provider, err, 0)
	}
	return err
}
