// Package gemini implements port.ModelClient on Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"pdfcheck/internal/config"
	"pdfcheck/internal/llm"
)

const defaultModel = "gemini-2.5-flash"

// Client sends single-turn content generation requests.
type Client struct {
	model     string
	maxTokens int
	timeout   time.Duration
	api       *genai.Client
}

// NewClient creates a Gemini client from LLM configuration. A non-empty
// cfg.BaseURL overrides the API endpoint.
func NewClient(ctx context.Context, cfg *config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	api, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		model:     model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout(),
		api:       api,
	}, nil
}

// Name returns the provider and model identifier.
func (c *Client) Name() string {
	return llm.DisplayName("gemini", c.model)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.api.Close()
}

// Complete sends the prompt and returns the concatenated text parts of the
// first candidate.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := llm.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.api.GenerativeModel(c.model)
	if c.maxTokens > 0 {
		model.SetMaxOutputTokens(clampTokens(c.maxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", llm.NewModelInvocationError("gemini", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", llm.NewModelInvocationError("gemini", errors.New("no response candidates or content"))
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String(), nil
}

func clampTokens(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}
