package port

import "context"

// ModelClient abstracts a text-generation backend: one prompt in, one completion out.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider and model, e.g. "ollama/gemma3:4b".
	Name() string
}
