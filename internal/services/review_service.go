package services

import (
	"context"
	"time"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/mastery"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/xp"
)

// ReviewOutcome is the persisted result of one review event.
type ReviewOutcome struct {
	Word        models.Word `json:"word"`
	MasteredNow bool        `json:"mastered_now"`
	XPAwarded   int         `json:"xp_awarded"`
	LeveledUp   bool        `json:"leveled_up"`
}

// ReviewService applies review outcomes to words and persists them. Every game
// mode funnels its word mutations through here so all modes update records
// identically.
type ReviewService interface {
	// ReviewWord runs a single correct/incorrect review against a stored word.
	ReviewWord(ctx context.Context, userID, wordID string, wasCorrect bool) (*ReviewOutcome, error)
	// CommitReview persists a word a session already ran through the mastery
	// engine, awarding extraXP plus the mastery bonus when masteredNow.
	CommitReview(ctx context.Context, userID string, word models.Word, masteredNow bool, extraXP int) (*ReviewOutcome, error)
}

type reviewService struct {
	words    repository.WordRepository
	progress ProgressService
}

// NewReviewService creates a new ReviewService
func NewReviewService(words repository.WordRepository, progress ProgressService) ReviewService {
	return &reviewService{words: words, progress: progress}
}

func (s *reviewService) ReviewWord(ctx context.Context, userID, wordID string, wasCorrect bool) (*ReviewOutcome, error) {
	log := logger.FromContext(ctx)
	log.Debug("reviewing word: word_id=%s, correct=%t", wordID, wasCorrect)

	word, err := s.words.Get(ctx, userID, wordID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", wordID)
	}

	updated := mastery.ApplyReviewOutcome(*word, wasCorrect, time.Now())
	masteredNow := updated.IsMastered && !word.IsMastered
	return s.CommitReview(ctx, userID, updated, masteredNow, 0)
}

func (s *reviewService) CommitReview(ctx context.Context, userID string, word models.Word, masteredNow bool, extraXP int) (*ReviewOutcome, error) {
	log := logger.FromContext(ctx)

	if _, err := s.words.Upsert(ctx, word); err != nil {
		log.Error("failed to persist reviewed word: %v", err)
		return nil, errors.NewInternalError(err)
	}

	amount := extraXP
	if masteredNow {
		amount += xp.RewardWordMastered
	}

	outcome := &ReviewOutcome{Word: word, MasteredNow: masteredNow}
	if amount > 0 {
		_, leveledUp, err := s.progress.AwardXP(ctx, userID, amount)
		if err != nil {
			// The review itself succeeded; XP bookkeeping is secondary.
			log.Warn("failed to award %d XP after review: %v", amount, err)
			return outcome, nil
		}
		outcome.XPAwarded = amount
		outcome.LeveledUp = leveledUp
	}
	if masteredNow {
		log.Info("word mastered: id=%s, term=%q", word.ID, word.Term)
	}
	return outcome, nil
}
