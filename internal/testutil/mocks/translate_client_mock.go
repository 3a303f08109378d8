package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTranslateClient is a mock implementation of translate.Client
type MockTranslateClient struct {
	mock.Mock
}

func (m *MockTranslateClient) Translate(ctx context.Context, text, from, to string) (string, error) {
	args := m.Called(ctx, text, from, to)
	return args.String(0), args.Error(1)
}
