package session

import (
	"math/rand"
	"time"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/models"
)

// MatchState enumerates the matching-pairs state machine.
type MatchState string

const (
	MatchStatePlaying MatchState = "playing"
	MatchStateWon     MatchState = "won"
)

const (
	// MatchPairCount is the number of word pairs on the board.
	MatchPairCount = 6
	// MismatchFlipDelay is how long a failed pair stays face-up before the
	// caller is expected to invoke ResolveMismatch.
	MismatchFlipDelay = 1000 * time.Millisecond
)

// Card is one face on the matching board. Term and translation cards of the
// same word share a PairID.
type Card struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	PairID    string `json:"pair_id"`
	IsTerm    bool   `json:"is_term"`
	IsFlipped bool   `json:"is_flipped"`
	IsMatched bool   `json:"is_matched"`
}

// MatchBoard is the matching-pairs session. A mismatched pair stays face-up
// until ResolveMismatch is called (the caller owns the flip-back delay), and
// any flips attempted while two cards are pending are ignored, so late timer
// fires cannot corrupt state.
type MatchBoard struct {
	Cards    []Card
	Moves    int
	Matches  int
	Seconds  int
	State    MatchState
	selected []int // indexes of face-up unmatched cards, len <= 2
}

// FlipResult reports the effect of one card flip.
type FlipResult struct {
	Flipped  bool // the click did something
	Resolved bool // this was the second card of an attempt
	Matched  bool // the attempt was a match
	Won      bool // the match completed the board
}

// NewMatchBoard samples MatchPairCount words and deals a shuffled board of
// term and translation cards.
func NewMatchBoard(words []models.Word, rng *rand.Rand) (*MatchBoard, error) {
	if len(words) < MatchPairCount {
		return nil, errors.NewInsufficientWordsError(MatchPairCount)
	}

	selected := SampleWords(words, MatchPairCount, rng)
	cards := make([]Card, 0, MatchPairCount*2)
	for _, w := range selected {
		cards = append(cards,
			Card{ID: w.ID + "-term", Content: w.Term, PairID: w.ID, IsTerm: true},
			Card{ID: w.ID + "-translation", Content: w.Translation, PairID: w.ID},
		)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &MatchBoard{
		Cards: cards,
		State: MatchStatePlaying,
	}, nil
}

func (m *MatchBoard) cardIndex(cardID string) int {
	for i := range m.Cards {
		if m.Cards[i].ID == cardID {
			return i
		}
	}
	return -1
}

// Flip turns a card face-up. Clicks on flipped or matched cards, clicks while
// a mismatch is pending, and clicks after the win are all no-ops.
func (m *MatchBoard) Flip(cardID string) FlipResult {
	if m.State != MatchStatePlaying || len(m.selected) >= 2 {
		return FlipResult{}
	}
	idx := m.cardIndex(cardID)
	if idx < 0 || m.Cards[idx].IsFlipped || m.Cards[idx].IsMatched {
		return FlipResult{}
	}

	m.Cards[idx].IsFlipped = true
	m.selected = append(m.selected, idx)
	if len(m.selected) < 2 {
		return FlipResult{Flipped: true}
	}

	// Second card: this is one attempt.
	m.Moves++
	first, second := m.selected[0], m.selected[1]
	if m.Cards[first].PairID == m.Cards[second].PairID {
		m.Cards[first].IsMatched = true
		m.Cards[second].IsMatched = true
		m.Matches++
		m.selected = nil
		if m.Matches == MatchPairCount {
			m.State = MatchStateWon
			return FlipResult{Flipped: true, Resolved: true, Matched: true, Won: true}
		}
		return FlipResult{Flipped: true, Resolved: true, Matched: true}
	}

	// Mismatch: both stay face-up until ResolveMismatch.
	return FlipResult{Flipped: true, Resolved: true}
}

// ResolveMismatch flips a pending mismatched pair back face-down. Calling it
// with no mismatch pending is a no-op.
func (m *MatchBoard) ResolveMismatch() bool {
	if len(m.selected) < 2 {
		return false
	}
	for _, idx := range m.selected {
		if !m.Cards[idx].IsMatched {
			m.Cards[idx].IsFlipped = false
		}
	}
	m.selected = nil
	return true
}

// Tick advances the wall-clock timer by one second while playing.
func (m *MatchBoard) Tick() int {
	if m.State == MatchStatePlaying {
		m.Seconds++
	}
	return m.Seconds
}
