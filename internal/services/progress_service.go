package services

import (
	"context"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/progress"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/xp"
)

// XPInfo is the level snapshot shown on the profile screen.
type XPInfo struct {
	XP       int              `json:"xp"`
	Level    int              `json:"level"`
	Title    string           `json:"title"`
	Progress xp.LevelProgress `json:"progress"`
}

// ProgressService handles streaks, study history, and XP bookkeeping.
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) (*models.UserProgress, error)
	// RecordActivity marks the day as studied. Safe to call on every app
	// activation: repeat calls on the same day are no-ops. The first call of
	// the day also awards the daily-streak XP bonus.
	RecordActivity(ctx context.Context, userID, today string) (*models.UserProgress, bool, error)
	AwardXP(ctx context.Context, userID string, amount int) (*models.UserProgress, bool, error)
	CompleteDungeonLevel(ctx context.Context, userID string, level int) error
	XPInfo(ctx context.Context, userID string) (*XPInfo, error)
}

type progressService struct {
	repo repository.ProgressRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(repo repository.ProgressRepository) ProgressService {
	return &progressService{repo: repo}
}

// load returns the stored progress or a fresh zero-activity record.
func (s *progressService) load(ctx context.Context, userID string) (models.UserProgress, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return models.UserProgress{}, err
	}
	if p == nil {
		return models.NewUserProgress(userID), nil
	}
	return *p, nil
}

func (s *progressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &p, nil
}

func (s *progressService) RecordActivity(ctx context.Context, userID, today string) (*models.UserProgress, bool, error) {
	log := logger.FromContext(ctx)

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, false, errors.NewInternalError(err)
	}

	updated, changed := progress.RecordActivity(current, today)
	if !changed {
		log.Debug("activity already recorded for %s", today)
		return &current, false, nil
	}

	// First activity of the day earns the streak bonus.
	var leveledUp bool
	updated, leveledUp = xp.Award(updated, xp.RewardDailyStreak)
	if leveledUp {
		log.Info("user %s leveled up to %d", userID, updated.Level)
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, false, errors.NewInternalError(err)
	}
	if err := s.repo.AddStudyDay(ctx, userID, today); err != nil {
		return nil, false, errors.NewInternalError(err)
	}

	log.Info("activity recorded: user=%s, day=%s, streak=%d", userID, today, updated.CurrentStreak)
	return &updated, true, nil
}

func (s *progressService) AwardXP(ctx context.Context, userID string, amount int) (*models.UserProgress, bool, error) {
	if amount < 0 {
		return nil, false, errors.NewValidationError("amount", "must not be negative")
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, false, errors.NewInternalError(err)
	}

	updated, leveledUp := xp.Award(current, amount)
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, false, errors.NewInternalError(err)
	}
	return &updated, leveledUp, nil
}

func (s *progressService) CompleteDungeonLevel(ctx context.Context, userID string, level int) error {
	if err := s.repo.AddCompletedLevel(ctx, userID, level); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *progressService) XPInfo(ctx context.Context, userID string) (*XPInfo, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &XPInfo{
		XP:       p.XP,
		Level:    p.Level,
		Title:    xp.LevelTitle(p.Level),
		Progress: xp.ProgressToNextLevel(p.XP),
	}, nil
}
