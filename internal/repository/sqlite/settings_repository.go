package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lingualearn/linguaflash/internal/db"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
)

type settingsRepository struct {
	db *db.DB
}

// NewSettingsRepository creates a new SettingsRepository implementation
func NewSettingsRepository(db *db.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")

	var s models.UserSettings
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, native_language, target_language, theme, notifications_enabled, notification_time, daily_goal, auto_read_flashcards
FROM settings
WHERE user_id = ?
`, userID).Scan(&s.UserID, &s.NativeLanguage, &s.TargetLanguage, &s.Theme,
		&s.NotificationsEnabled, &s.NotificationTime, &s.DailyGoal, &s.AutoReadFlashcards)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no settings for user %s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get settings: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s models.UserSettings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("saving settings: user_id=%s", s.UserID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO settings (user_id, native_language, target_language, theme, notifications_enabled, notification_time, daily_goal, auto_read_flashcards)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    native_language = excluded.native_language,
    target_language = excluded.target_language,
    theme = excluded.theme,
    notifications_enabled = excluded.notifications_enabled,
    notification_time = excluded.notification_time,
    daily_goal = excluded.daily_goal,
    auto_read_flashcards = excluded.auto_read_flashcards
`, s.UserID, s.NativeLanguage, s.TargetLanguage, s.Theme,
		s.NotificationsEnabled, s.NotificationTime, s.DailyGoal, s.AutoReadFlashcards)
	if err != nil {
		log.Error("failed to save settings: %v", err)
	}
	return err
}
