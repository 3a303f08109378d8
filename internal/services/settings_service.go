package services

import (
	"context"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
)

// SettingsService reads and writes user preferences.
type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	SaveSettings(ctx context.Context, settings models.UserSettings) (*models.UserSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if settings == nil {
		def := models.DefaultSettings(userID)
		return &def, nil
	}
	return settings, nil
}

func (s *settingsService) SaveSettings(ctx context.Context, settings models.UserSettings) (*models.UserSettings, error) {
	switch settings.Theme {
	case "", "light", "dark", "system":
	default:
		return nil, errors.NewValidationError("theme", "must be 'light', 'dark', or 'system'")
	}
	if settings.Theme == "" {
		settings.Theme = "system"
	}
	if settings.DailyGoal < 0 {
		return nil, errors.NewValidationError("daily_goal", "must not be negative")
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &settings, nil
}
