package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lingualearn/linguaflash/internal/models"
)

// MockSettingsRepository is a mock implementation of repository.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s models.UserSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
