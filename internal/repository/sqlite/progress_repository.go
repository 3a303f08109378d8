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

type progressRepository struct {
	db *db.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *db.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: user_id=%s", userID)

	p := models.NewUserProgress(userID)
	err := r.db.QueryRowContext(ctx, `
SELECT current_streak, last_study_date, xp, level
FROM user_progress
WHERE user_id = ?
`, userID).Scan(&p.CurrentStreak, &p.LastStudyDate, &p.XP, &p.Level)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress record for user %s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}

	if err := r.loadStudyHistory(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadCompletedLevels(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) loadStudyHistory(ctx context.Context, p *models.UserProgress) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT day FROM study_history WHERE user_id = ? ORDER BY day ASC
`, p.UserID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return err
		}
		p.StudyHistory = append(p.StudyHistory, day)
	}
	return rows.Err()
}

func (r *progressRepository) loadCompletedLevels(ctx context.Context, p *models.UserProgress) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT level FROM completed_levels WHERE user_id = ? ORDER BY level ASC
`, p.UserID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return err
		}
		p.CompletedDungeonLevels = append(p.CompletedDungeonLevels, level)
	}
	return rows.Err()
}

func (r *progressRepository) Save(ctx context.Context, p models.UserProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("saving progress: user_id=%s, streak=%d, xp=%d, level=%d", p.UserID, p.CurrentStreak, p.XP, p.Level)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_progress (user_id, current_streak, last_study_date, xp, level)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    current_streak = excluded.current_streak,
    last_study_date = excluded.last_study_date,
    xp = excluded.xp,
    level = excluded.level
`, p.UserID, p.CurrentStreak, p.LastStudyDate, p.XP, p.Level)
	if err != nil {
		log.Error("failed to save progress: %v", err)
	}
	return err
}

func (r *progressRepository) AddStudyDay(ctx context.Context, userID, day string) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("recording study day: user_id=%s, day=%s", userID, day)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO study_history (user_id, day)
VALUES (?, ?)
ON CONFLICT(user_id, day) DO NOTHING
`, userID, day)
	if err != nil {
		log.Error("failed to record study day: %v", err)
	}
	return err
}

func (r *progressRepository) AddCompletedLevel(ctx context.Context, userID string, level int) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("recording completed level: user_id=%s, level=%d", userID, level)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO completed_levels (user_id, level)
VALUES (?, ?)
ON CONFLICT(user_id, level) DO NOTHING
`, userID, level)
	if err != nil {
		log.Error("failed to record completed level: %v", err)
	}
	return err
}
