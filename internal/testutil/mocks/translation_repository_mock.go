package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTranslationRepository is a mock implementation of repository.TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Get(ctx context.Context, text, from, to string, now time.Time) (string, bool, error) {
	args := m.Called(ctx, text, from, to, now)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockTranslationRepository) Put(ctx context.Context, text, from, to, translated string, now time.Time) error {
	args := m.Called(ctx, text, from, to, translated, now)
	return args.Error(0)
}

func (m *MockTranslationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
