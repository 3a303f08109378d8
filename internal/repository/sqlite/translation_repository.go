package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lingualearn/linguaflash/internal/db"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/repository"
)

// CacheTTL is how long a cached translation stays valid.
const CacheTTL = 30 * 24 * time.Hour

type translationRepository struct {
	db *db.DB
}

// NewTranslationRepository creates a new TranslationRepository implementation
func NewTranslationRepository(db *db.DB) repository.TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Get(ctx context.Context, text, from, to string, now time.Time) (string, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("translation_repo")

	var translated string
	var createdAt int64
	err := r.db.QueryRowContext(ctx, `
SELECT translated, created_at
FROM translation_cache
WHERE text = ? AND from_lang = ? AND to_lang = ?
`, text, from, to).Scan(&translated, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Miss: take the chance to drop anything stale.
		if _, purgeErr := r.PurgeExpired(ctx, now); purgeErr != nil {
			log.Warn("failed to purge expired translations: %v", purgeErr)
		}
		return "", false, nil
	}
	if err != nil {
		log.Error("failed to read translation cache: %v", err)
		return "", false, err
	}

	if now.UnixMilli()-createdAt > CacheTTL.Milliseconds() {
		log.Debug("cached translation expired: %q %s->%s", text, from, to)
		if _, purgeErr := r.PurgeExpired(ctx, now); purgeErr != nil {
			log.Warn("failed to purge expired translations: %v", purgeErr)
		}
		return "", false, nil
	}
	return translated, true, nil
}

func (r *translationRepository) Put(ctx context.Context, text, from, to, translated string, now time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("translation_repo")
	log.Debug("caching translation: %q %s->%s", text, from, to)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO translation_cache (text, from_lang, to_lang, translated, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(text, from_lang, to_lang) DO UPDATE SET
    translated = excluded.translated,
    created_at = excluded.created_at
`, text, from, to, translated, now.UnixMilli())
	if err != nil {
		log.Error("failed to cache translation: %v", err)
	}
	return err
}

func (r *translationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UnixMilli() - CacheTTL.Milliseconds()
	res, err := r.db.ExecContext(ctx, `DELETE FROM translation_cache WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.FromContext(ctx).WithPrefix("translation_repo").Debug("purged %d expired translations", n)
	}
	return n, nil
}
