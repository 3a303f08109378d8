package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/services"
)

// MockProgressService is a mock implementation of services.ProgressService
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressService) RecordActivity(ctx context.Context, userID, today string) (*models.UserProgress, bool, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.UserProgress), args.Bool(1), args.Error(2)
}

func (m *MockProgressService) AwardXP(ctx context.Context, userID string, amount int) (*models.UserProgress, bool, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.UserProgress), args.Bool(1), args.Error(2)
}

func (m *MockProgressService) CompleteDungeonLevel(ctx context.Context, userID string, level int) error {
	args := m.Called(ctx, userID, level)
	return args.Error(0)
}

func (m *MockProgressService) XPInfo(ctx context.Context, userID string) (*services.XPInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.XPInfo), args.Error(1)
}
