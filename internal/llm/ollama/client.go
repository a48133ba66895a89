// Package ollama connects to a self-hosted Ollama server through its
// OpenAI-compatible endpoint.
package ollama

import (
	"strings"

	"pdfcheck/internal/config"
	"pdfcheck/internal/llm/openai"
)

const (
	DefaultHost  = "http://localhost:11434"
	DefaultModel = "gemma3:4b"
)

// NewClient creates a client for the Ollama server at cfg.BaseURL, or at
// DefaultHost when unset. No API key is needed.
func NewClient(cfg *config.LLMConfig) *openai.Client {
	return openai.NewCompatibleClient("ollama", cfg, CompatibleBaseURL(cfg.BaseURL), DefaultModel)
}

// CompatibleBaseURL appends the /v1 path Ollama serves the OpenAI API under.
func CompatibleBaseURL(host string) string {
	if host == "" {
		host = DefaultHost
	}
	host = strings.TrimRight(host, "/")
	if strings.HasSuffix(host, "/v1") {
		return host
	}
	return host + "/v1"
}
