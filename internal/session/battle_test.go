package session_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/session"
)

func newTestBattle(t *testing.T, level int) *session.Battle {
	t.Helper()
	battle, err := session.NewBattle(makeWords(8), level, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return battle
}

func TestNewBattle_HPScalesWithLevel(t *testing.T) {
	battle := newTestBattle(t, 3)

	assert.Equal(t, session.BattleStateEntrance, battle.State)
	assert.Equal(t, session.BasePlayerHP, battle.PlayerHP)
	assert.Equal(t, 200, battle.MonsterHP, "level 3 boss has 100 + 2*50 HP")
	assert.Equal(t, 200, battle.MaxMonsterHP)
}

func TestNewBattle_RejectsBadLevel(t *testing.T) {
	_, err := session.NewBattle(makeWords(8), 0, rand.New(rand.NewSource(1)))
	require.Error(t, err)

	_, err = session.NewBattle(makeWords(8), session.MaxBattleLevel+1, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestNewBattle_RejectsSmallDictionary(t *testing.T) {
	_, err := session.NewBattle(makeWords(3), 1, rand.New(rand.NewSource(1)))

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInsufficientWords, appErr.Code)
}

func TestBattle_BeginDealsTurn(t *testing.T) {
	battle := newTestBattle(t, 1)

	require.NoError(t, battle.Begin())

	assert.Equal(t, session.BattleStatePlaying, battle.State)
	require.NotNil(t, battle.Current)
	assert.Len(t, battle.Current.Options, 4)
	assert.Contains(t, battle.Current.Options, battle.Current.Word.Translation)

	assert.Error(t, battle.Begin(), "begin twice must fail")
}

func TestBattle_CorrectAnswerDamagesMonster(t *testing.T) {
	battle := newTestBattle(t, 1)
	require.NoError(t, battle.Begin())

	outcome, err := battle.Answer(battle.Current.Word.Translation, time.Now())

	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, battle.MaxMonsterHP-session.MonsterDamage, outcome.MonsterHP)
	assert.Equal(t, session.BasePlayerHP, outcome.PlayerHP)
	assert.Equal(t, session.BattleStatePlaying, outcome.State)
	require.NotNil(t, battle.Current, "a new turn is dealt while playing")
}

func TestBattle_WrongAnswerDamagesPlayer(t *testing.T) {
	battle := newTestBattle(t, 1)
	require.NoError(t, battle.Begin())

	outcome, err := battle.Answer("definitely wrong", time.Now())

	require.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, session.BasePlayerHP-session.PlayerDamage, outcome.PlayerHP)
	assert.Equal(t, battle.MaxMonsterHP, outcome.MonsterHP)
}

func TestBattle_WinAfterEnoughCorrectAnswers(t *testing.T) {
	battle := newTestBattle(t, 3) // 200 HP, 25 damage per hit
	require.NoError(t, battle.Begin())

	var last session.BattleOutcome
	for i := 0; i < 8; i++ {
		var err error
		last, err = battle.Answer(battle.Current.Word.Translation, time.Now())
		require.NoError(t, err)
	}

	assert.Equal(t, session.BattleStateWon, last.State)
	assert.Equal(t, 0, last.MonsterHP)
	assert.Nil(t, battle.Current, "no turn outstanding after the battle ends")

	_, err := battle.Answer("anything", time.Now())
	assert.Error(t, err, "answers after the end must be rejected")
}

func TestBattle_LossAfterFiveMisses(t *testing.T) {
	battle := newTestBattle(t, 1)
	require.NoError(t, battle.Begin())

	var last session.BattleOutcome
	for i := 0; i < 5; i++ {
		var err error
		last, err = battle.Answer("wrong every time", time.Now())
		require.NoError(t, err)
	}

	assert.Equal(t, session.BattleStateLost, last.State)
	assert.Equal(t, 0, last.PlayerHP)
}

func TestBattle_ResetRestoresEntrance(t *testing.T) {
	battle := newTestBattle(t, 1)
	require.NoError(t, battle.Begin())

	assert.Error(t, battle.Reset(), "reset mid-battle must fail")

	for i := 0; i < 5; i++ {
		_, err := battle.Answer("wrong", time.Now())
		require.NoError(t, err)
	}

	require.NoError(t, battle.Reset())
	assert.Equal(t, session.BattleStateEntrance, battle.State)
	assert.Equal(t, session.BasePlayerHP, battle.PlayerHP)
	assert.Equal(t, battle.MaxMonsterHP, battle.MonsterHP)
}
