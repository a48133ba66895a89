// Package claude implements port.ModelClient on the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"

	"pdfcheck/internal/config"
	"pdfcheck/internal/llm"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 8192
)

// Client sends single-turn message requests.
type Client struct {
	model     string
	maxTokens int
	timeout   time.Duration
	api       *anthropic.Client
}

// NewClient creates a Claude client from LLM configuration.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("claude: api key is required")
	}
	return newClient(cfg, cfg.BaseURL), nil
}

// NewClientWithEndpoint creates a client pointing at a custom API base URL (for testing).
func NewClientWithEndpoint(cfg *config.LLMConfig, baseURL string) *Client {
	return newClient(cfg, baseURL)
}

func newClient(cfg *config.LLMConfig, baseURL string) *Client {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		model:     model,
		maxTokens: maxTokens,
		timeout:   cfg.Timeout(),
		api:       anthropic.NewClient(cfg.APIKey, opts...),
	}
}

// Name returns the provider and model identifier.
func (c *Client) Name() string {
	return llm.DisplayName("claude", c.model)
}

// Complete sends the prompt as a single user message and returns the reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := llm.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		var apiErr *anthropic.APIError
		if errors.As(err, &apiErr) && apiErr.IsRateLimitErr() {
			err = llm.NewRateLimitError("claude", err, 0)
		}
		return "", llm.NewModelInvocationError("claude", err)
	}

	for _, block := range resp.Content {
		if block.Text != nil {
			return *block.Text, nil
		}
	}
	return "", llm.NewModelInvocationError("claude", fmt.Errorf("no text content in response (stop_reason: %s)", resp.StopReason))
}
