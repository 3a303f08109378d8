package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lingualearn/linguaflash/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Save(ctx context.Context, p models.UserProgress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgressRepository) AddStudyDay(ctx context.Context, userID, day string) error {
	args := m.Called(ctx, userID, day)
	return args.Error(0)
}

func (m *MockProgressRepository) AddCompletedLevel(ctx context.Context, userID string, level int) error {
	args := m.Called(ctx, userID, level)
	return args.Error(0)
}
