package llm

import (
	"fmt"
	"time"
)

// DefaultRetryAfter is used when a backend does not say how long to wait.
const DefaultRetryAfter = 60 * time.Second

// RateLimitError indicates the backend rejected the call with HTTP 429 or
// an equivalent rate-limit error.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. A non-positive retryAfter
// becomes DefaultRetryAfter.
func NewRateLimitError(provider string, err error, retryAfter time.Duration) *RateLimitError {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	return &RateLimitError{Provider: provider, RetryAfter: retryAfter, Err: err}
}
