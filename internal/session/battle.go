package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/mastery"
	"github.com/lingualearn/linguaflash/internal/models"
)

// BattleState enumerates the boss-battle state machine.
type BattleState string

const (
	BattleStateEntrance BattleState = "entrance"
	BattleStatePlaying  BattleState = "playing"
	BattleStateWon      BattleState = "won"
	BattleStateLost     BattleState = "lost"
)

// Battle tuning constants. Historical revisions drifted between 15/20/25 for
// damage values; these are the single source of truth now.
const (
	MinBattleWords    = 4
	MaxBattleLevel    = 10
	BasePlayerHP      = 100
	BaseMonsterHP     = 100
	MonsterHPPerLevel = 50
	MonsterDamage     = 25 // dealt to the monster on a correct answer
	PlayerDamage      = 20 // dealt to the player on a wrong answer
)

// MonsterHPForLevel returns the boss HP pool for a battle tier.
func MonsterHPForLevel(level int) int {
	return BaseMonsterHP + (level-1)*MonsterHPPerLevel
}

// Turn is one question: a word and four shuffled answer options.
type Turn struct {
	Word    models.Word `json:"word"`
	Options []string    `json:"options"`
}

// Battle is the boss-battle session state machine. Transitions are driven by
// Begin and Answer only; at most one turn is outstanding at a time.
type Battle struct {
	Level        int
	State        BattleState
	PlayerHP     int
	MonsterHP    int
	MaxMonsterHP int
	Current      *Turn

	words []models.Word
	rng   *rand.Rand
}

// BattleOutcome reports the full effect of resolving one turn.
type BattleOutcome struct {
	Correct     bool
	Word        models.Word // updated via the mastery engine
	MasteredNow bool
	PlayerHP    int
	MonsterHP   int
	State       BattleState
}

// NewBattle validates the word set and level and prepares a battle in the
// entrance state. Fewer than MinBattleWords total words refuses the session.
func NewBattle(words []models.Word, level int, rng *rand.Rand) (*Battle, error) {
	if level < 1 || level > MaxBattleLevel {
		return nil, errors.NewValidationError("level", fmt.Sprintf("must be between 1 and %d", MaxBattleLevel))
	}
	if len(words) < MinBattleWords {
		return nil, errors.NewInsufficientWordsError(MinBattleWords)
	}

	hp := MonsterHPForLevel(level)
	return &Battle{
		Level:        level,
		State:        BattleStateEntrance,
		PlayerHP:     BasePlayerHP,
		MonsterHP:    hp,
		MaxMonsterHP: hp,
		words:        BattleWordPool(words, level),
		rng:          rng,
	}, nil
}

// Begin moves from entrance to playing and deals the first turn.
func (b *Battle) Begin() error {
	if b.State != BattleStateEntrance {
		return errors.NewBadRequestError("battle already started")
	}
	b.State = BattleStatePlaying
	b.nextTurn()
	return nil
}

// nextTurn picks a random word and generates its options. Only called once the
// previous turn has fully resolved.
func (b *Battle) nextTurn() {
	word := b.words[b.rng.Intn(len(b.words))]
	b.Current = &Turn{
		Word:    word,
		Options: AnswerOptions(b.words, word, b.rng),
	}
}

// Answer resolves the outstanding turn with the selected option. The word is
// run through the mastery engine either way; HP and state transitions follow
// the fixed damage table. When the battle stays in playing, the next turn is
// dealt before Answer returns.
func (b *Battle) Answer(option string, now time.Time) (BattleOutcome, error) {
	if b.State != BattleStatePlaying {
		return BattleOutcome{}, errors.NewBadRequestError("battle is not in progress")
	}
	if b.Current == nil {
		return BattleOutcome{}, errors.NewBadRequestError("no outstanding turn")
	}

	word := b.Current.Word
	correct := option == word.Translation
	updated := mastery.ApplyReviewOutcome(word, correct, now)

	if correct {
		b.MonsterHP -= MonsterDamage
		if b.MonsterHP <= 0 {
			b.MonsterHP = 0
			b.State = BattleStateWon
		}
	} else {
		b.PlayerHP -= PlayerDamage
		if b.PlayerHP <= 0 {
			b.PlayerHP = 0
			b.State = BattleStateLost
		}
	}

	// Keep the local pool in sync so later distractors reflect the review.
	for i := range b.words {
		if b.words[i].ID == updated.ID {
			b.words[i] = updated
			break
		}
	}

	outcome := BattleOutcome{
		Correct:     correct,
		Word:        updated,
		MasteredNow: updated.IsMastered && !word.IsMastered,
		PlayerHP:    b.PlayerHP,
		MonsterHP:   b.MonsterHP,
		State:       b.State,
	}

	if b.State == BattleStatePlaying {
		b.nextTurn()
	} else {
		b.Current = nil
	}
	return outcome, nil
}

// Reset returns a finished battle to the entrance state for a retry at the
// same tier.
func (b *Battle) Reset() error {
	if b.State != BattleStateWon && b.State != BattleStateLost {
		return errors.NewBadRequestError("battle is still in progress")
	}
	b.State = BattleStateEntrance
	b.PlayerHP = BasePlayerHP
	b.MonsterHP = b.MaxMonsterHP
	b.Current = nil
	return nil
}
