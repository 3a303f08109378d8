package repository

import (
	"context"
	"time"

	"github.com/lingualearn/linguaflash/internal/models"
)

// WordRepository handles word data access. Every call takes the owning user's
// id explicitly; there is no ambient current-user state.
type WordRepository interface {
	List(ctx context.Context, userID string, filter models.WordFilter) ([]models.Word, error)
	Count(ctx context.Context, userID string, filter models.WordFilter) (int, error)
	Get(ctx context.Context, userID, id string) (*models.Word, error)
	Upsert(ctx context.Context, w models.Word) (string, error)
	Delete(ctx context.Context, userID, id string) error
	Categories(ctx context.Context, userID string) ([]string, error)
	// Seed inserts the given words only when the user has no words yet.
	// Returns the number of words inserted.
	Seed(ctx context.Context, userID string, words []models.Word) (int, error)
}

// ProgressRepository handles per-user progress data access.
type ProgressRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProgress, error)
	Save(ctx context.Context, p models.UserProgress) error
	// AddStudyDay appends a study day; inserting the same day twice is a no-op.
	AddStudyDay(ctx context.Context, userID, day string) error
	// AddCompletedLevel records a beaten battle tier; idempotent set-insert.
	AddCompletedLevel(ctx context.Context, userID string, level int) error
}

// SettingsRepository handles user settings data access.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	Save(ctx context.Context, s models.UserSettings) error
}

// TranslationRepository caches translations keyed by (text, from, to).
// Entries older than the expiry window are treated as absent and purged.
type TranslationRepository interface {
	Get(ctx context.Context, text, from, to string, now time.Time) (string, bool, error)
	Put(ctx context.Context, text, from, to, translated string, now time.Time) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
