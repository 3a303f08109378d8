package session

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/mastery"
	"github.com/lingualearn/linguaflash/internal/models"
)

const (
	// BuilderMinTermLength filters out terms too short to scramble.
	BuilderMinTermLength = 3
	// BuilderSessionSize caps the number of words per builder run.
	BuilderSessionSize = 5
)

// Letter is one draggable tile of a scrambled term.
type Letter struct {
	ID   string `json:"id"`
	Char string `json:"char"`
}

// BuilderSession presents scrambled letters of a term; the player rebuilds the
// word by selecting tiles in order.
type BuilderSession struct {
	Words     []models.Word
	Index     int
	Scrambled []Letter
	Selected  []Letter

	rng *rand.Rand
}

// NewBuilderSession filters to terms of at least BuilderMinTermLength runes
// and samples up to BuilderSessionSize of them.
func NewBuilderSession(words []models.Word, rng *rand.Rand) (*BuilderSession, error) {
	valid := lo.Filter(words, func(w models.Word, _ int) bool {
		return len([]rune(w.Term)) >= BuilderMinTermLength
	})
	if len(valid) == 0 {
		return nil, errors.NewInsufficientWordsError(1)
	}

	s := &BuilderSession{
		Words: SampleWords(valid, BuilderSessionSize, rng),
		rng:   rng,
	}
	s.deal()
	return s, nil
}

// Current returns the word being rebuilt, if any.
func (s *BuilderSession) Current() (models.Word, bool) {
	if s.Index >= len(s.Words) {
		return models.Word{}, false
	}
	return s.Words[s.Index], true
}

// deal scrambles the current term into letter tiles.
func (s *BuilderSession) deal() {
	s.Scrambled = nil
	s.Selected = nil
	current, ok := s.Current()
	if !ok {
		return
	}
	for i, r := range []rune(current.Term) {
		s.Scrambled = append(s.Scrambled, Letter{
			ID:   fmt.Sprintf("%d-%c-%d", i, r, s.rng.Intn(1<<16)),
			Char: string(r),
		})
	}
	s.rng.Shuffle(len(s.Scrambled), func(i, j int) {
		s.Scrambled[i], s.Scrambled[j] = s.Scrambled[j], s.Scrambled[i]
	})
}

// Select moves a tile from the scrambled pool to the answer row.
func (s *BuilderSession) Select(letterID string) bool {
	for i, l := range s.Scrambled {
		if l.ID == letterID {
			s.Scrambled = append(s.Scrambled[:i], s.Scrambled[i+1:]...)
			s.Selected = append(s.Selected, l)
			return true
		}
	}
	return false
}

// Undo moves a tile back from the answer row to the scrambled pool.
func (s *BuilderSession) Undo(letterID string) bool {
	for i, l := range s.Selected {
		if l.ID == letterID {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			s.Scrambled = append(s.Scrambled, l)
			return true
		}
	}
	return false
}

// Attempt returns the word built so far.
func (s *BuilderSession) Attempt() string {
	var sb strings.Builder
	for _, l := range s.Selected {
		sb.WriteString(l.Char)
	}
	return sb.String()
}

// Check compares the built word against the term (case-insensitive), runs the
// outcome through the mastery engine, and advances to the next word.
func (s *BuilderSession) Check(now time.Time) (ReviewResult, error) {
	current, ok := s.Current()
	if !ok {
		return ReviewResult{}, errors.NewBadRequestError("session has no remaining words")
	}

	correct := strings.EqualFold(s.Attempt(), current.Term)
	updated := mastery.ApplyReviewOutcome(current, correct, now)
	s.Words[s.Index] = updated
	s.Index++
	s.deal()

	return ReviewResult{
		Word:        updated,
		MasteredNow: updated.IsMastered && !current.IsMastered,
		Done:        s.Index >= len(s.Words),
	}, nil
}
