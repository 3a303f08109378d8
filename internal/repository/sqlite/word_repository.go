package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/lingualearn/linguaflash/internal/db"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const wordColumns = "id, user_id, term, translation, phonetic, category, type, mastery_level, times_correct, is_mastered, last_reviewed, created_at"

type wordRepository struct {
	db *db.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *db.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) listQuery(userID string, filter models.WordFilter) squirrel.SelectBuilder {
	query := sqlBuilder.
		Select(wordColumns).
		From("words").
		Where(squirrel.Eq{"user_id": userID})

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Mastered != nil {
		query = query.Where(squirrel.Eq{"is_mastered": *filter.Mastered})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"term": like},
			squirrel.Like{"translation": like},
		})
	}
	return query
}

func (r *wordRepository) List(ctx context.Context, userID string, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: user_id=%s, category=%q, search=%q", userID, filter.Category, filter.Search)

	query := r.listQuery(userID, filter).OrderBy("created_at ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build word list query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, w)
	}
	log.Debug("found %d words", len(words))
	return words, rows.Err()
}

func (r *wordRepository) Count(ctx context.Context, userID string, filter models.WordFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	query := sqlBuilder.Select("COUNT(*)").From("words").Where(squirrel.Eq{"user_id": userID})
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Mastered != nil {
		query = query.Where(squirrel.Eq{"is_mastered": *filter.Mastered})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count words: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *wordRepository) Get(ctx context.Context, userID, id string) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: id=%s", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+wordColumns+`
FROM words
WHERE id = ? AND user_id = ?
`, id, userID)

	w, err := scanWord(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	return &w, nil
}

func (r *wordRepository) Upsert(ctx context.Context, w models.Word) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("upserting word: id=%s, term=%q", w.ID, w.Term)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO words (id, user_id, term, translation, phonetic, category, type, mastery_level, times_correct, is_mastered, last_reviewed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    term = excluded.term,
    translation = excluded.translation,
    phonetic = excluded.phonetic,
    category = excluded.category,
    type = excluded.type,
    mastery_level = excluded.mastery_level,
    times_correct = excluded.times_correct,
    is_mastered = excluded.is_mastered,
    last_reviewed = excluded.last_reviewed
`, w.ID, w.UserID, w.Term, w.Translation, w.Phonetic, w.Category, string(w.Type),
		w.MasteryLevel, w.TimesCorrect, w.IsMastered, w.LastReviewed, w.CreatedAt)
	if err != nil {
		log.Error("failed to upsert word: %v", err)
		return "", err
	}
	return w.ID, nil
}

func (r *wordRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("deleting word: id=%s", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		log.Error("failed to delete word: %v", err)
	}
	return err
}

func (r *wordRepository) Categories(ctx context.Context, userID string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT category FROM words WHERE user_id = ? ORDER BY category ASC
`, userID)
	if err != nil {
		log.Error("failed to list categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *wordRepository) Seed(ctx context.Context, userID string, words []models.Word) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	inserted := 0
	err := db.Tx(ctx, r.db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM words WHERE user_id = ?`, userID).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			log.Debug("user %s already has %d words, skipping seed", userID, count)
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO words (id, user_id, term, translation, phonetic, category, type, mastery_level, times_correct, is_mastered, last_reviewed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, w := range words {
			if _, err := stmt.ExecContext(ctx, w.ID, userID, w.Term, w.Translation, w.Phonetic, w.Category, string(w.Type),
				w.MasteryLevel, w.TimesCorrect, w.IsMastered, w.LastReviewed, w.CreatedAt); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		log.Error("failed to seed words: %v", err)
		return 0, err
	}
	if inserted > 0 {
		log.Info("seeded %d starter words for user %s", inserted, userID)
	}
	return inserted, nil
}
