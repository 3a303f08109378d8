package session

import (
	"time"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/mastery"
	"github.com/lingualearn/linguaflash/internal/models"
)

// FlashcardSessionSize is the number of words drawn into one flashcard run.
const FlashcardSessionSize = 10

// FlashcardSession walks through the weakest words one card at a time.
type FlashcardSession struct {
	Words []models.Word
	Index int
}

// ReviewResult is the outcome of answering one card in any mode that routes
// through the mastery engine.
type ReviewResult struct {
	Word        models.Word // updated word, already run through the mastery engine
	MasteredNow bool        // true exactly when IsMastered transitioned false -> true
	Done        bool        // no cards left in the session
}

// NewFlashcardSession selects up to FlashcardSessionSize weakest words.
func NewFlashcardSession(words []models.Word) (*FlashcardSession, error) {
	if len(words) == 0 {
		return nil, errors.NewInsufficientWordsError(1)
	}
	return &FlashcardSession{
		Words: SelectFlashcardWords(words, FlashcardSessionSize),
	}, nil
}

// Current returns the card being shown, if any.
func (s *FlashcardSession) Current() (models.Word, bool) {
	if s.Index >= len(s.Words) {
		return models.Word{}, false
	}
	return s.Words[s.Index], true
}

// Answer resolves the current card with a got-it/forgot outcome and advances.
func (s *FlashcardSession) Answer(wasCorrect bool, now time.Time) (ReviewResult, error) {
	current, ok := s.Current()
	if !ok {
		return ReviewResult{}, errors.NewBadRequestError("session has no remaining cards")
	}

	updated := mastery.ApplyReviewOutcome(current, wasCorrect, now)
	s.Words[s.Index] = updated
	s.Index++

	return ReviewResult{
		Word:        updated,
		MasteredNow: updated.IsMastered && !current.IsMastered,
		Done:        s.Index >= len(s.Words),
	}, nil
}
