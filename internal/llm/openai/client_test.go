package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/config"
	"pdfcheck/internal/domain"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/llm/ollama"
	"pdfcheck/internal/llm/openai"
)

func successResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody["model"])
		assert.Equal(t, float64(512), reqBody["max_tokens"])
		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		assert.Equal(t, "prüfe das", msg["content"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse(`{"checklist":["a"]}`))
	}))
	defer server.Close()

	cfg := &config.LLMConfig{APIKey: "test-openai-key", Model: "gpt-4o", MaxTokens: 512, TimeoutSecs: 5}
	c := openai.NewClientWithEndpoint("openai", cfg, server.URL)

	out, err := c.Complete(context.Background(), "prüfe das")

	require.NoError(t, err)
	assert.Equal(t, `{"checklist":["a"]}`, out)
	assert.Equal(t, "openai/gpt-4o", c.Name())
}

func TestClient_Complete_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"model melted","type":"server_error"}}`))
	}))
	defer server.Close()

	c := openai.NewClientWithEndpoint("openai", &config.LLMConfig{APIKey: "k"}, server.URL)

	_, err := c.Complete(context.Background(), "x")

	require.Error(t, err)
	var mie *llm.ModelInvocationError
	require.True(t, errors.As(err, &mie))
	assert.Equal(t, "openai", mie.Provider)
	assert.True(t, errors.Is(err, domain.ErrModelInvocation))
	assert.Contains(t, err.Error(), "model melted")
}

func TestClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := openai.NewClientWithEndpoint("openai", &config.LLMConfig{APIKey: "k"}, server.URL)

	_, err := c.Complete(context.Background(), "x")

	assert.ErrorContains(t, err, "no response choices")
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	c, err := openai.NewClient(&config.LLMConfig{})
	assert.Nil(t, c)
	assert.Error(t, err)
}

func TestOllamaClient_UsesCompatibleEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer ollama", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, ollama.DefaultModel, reqBody["model"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse("- Punkt"))
	}))
	defer server.Close()

	c := ollama.NewClient(&config.LLMConfig{BaseURL: server.URL + "/"})

	out, err := c.Complete(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "- Punkt", out)
	assert.Equal(t, "ollama/gemma3:4b", c.Name())
}

func TestOllamaCompatibleBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:11434/v1", ollama.CompatibleBaseURL(""))
	assert.Equal(t, "http://ollama:11434/v1", ollama.CompatibleBaseURL("http://ollama:11434"))
	assert.Equal(t, "http://ollama:11434/v1", ollama.CompatibleBaseURL("http://ollama:11434/v1/"))
}

func TestClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	c := openai.NewClientWithEndpoint("openai", &config.LLMConfig{APIKey: "k"}, server.URL)
	_, err := c.Complete(context.Background(), "x")

	require.Error(t, err)
	var rlErr *llm.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, llm.DefaultRetryAfter, rlErr.RetryAfter)
	assert.True(t, errors.Is(err, domain.ErrModelInvocation))
}
