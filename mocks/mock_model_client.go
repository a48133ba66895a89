package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockModelClient is a mock implementation of port.ModelClient.
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockModelClient) Name() string {
	args := m.Called()
	return args.String(0)
}
