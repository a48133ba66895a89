package llm

import (
	"errors"
	"fmt"

	"pdfcheck/internal/domain"
)

// ModelInvocationError indicates the backend call failed. The backend's own
// error text is kept in Err and is part of the message.
type ModelInvocationError struct {
	Provider string
	Err      error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("failed to call %s model: %v", e.Provider, e.Err)
}

// Unwrap exposes both the ErrModelInvocation sentinel and the backend error.
func (e *ModelInvocationError) Unwrap() []error {
	return []error{domain.ErrModelInvocation, e.Err}
}

// NewModelInvocationError creates a ModelInvocationError for a provider.
func NewModelInvocationError(provider string, err error) *ModelInvocationError {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ModelInvocationError{Provider: provider, Err: err}
}

// AsModelInvocationError returns err unchanged if it already is a
// ModelInvocationError, and wraps it otherwise.
func AsModelInvocationError(provider string, err error) *ModelInvocationError {
	var mie *ModelInvocationError
	if errors.As(err, &mie) {
		return mie
	}
	return NewModelInvocationError(provider, err)
}
