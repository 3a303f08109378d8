package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/session"
)

func TestNewFlashcardSession_Empty(t *testing.T) {
	_, err := session.NewFlashcardSession(nil)
	require.Error(t, err)
}

func TestNewFlashcardSession_CapsAtSessionSize(t *testing.T) {
	s, err := session.NewFlashcardSession(makeWords(15))
	require.NoError(t, err)
	assert.Len(t, s.Words, session.FlashcardSessionSize)
}

func TestFlashcardSession_AnswerAdvances(t *testing.T) {
	s, err := session.NewFlashcardSession(makeWords(2))
	require.NoError(t, err)

	first, ok := s.Current()
	require.True(t, ok)

	result, err := s.Answer(true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, first.ID, result.Word.ID)
	assert.Equal(t, 1, result.Word.MasteryLevel)
	assert.False(t, result.Done)

	second, ok := s.Current()
	require.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)

	result, err = s.Answer(false, time.Now())
	require.NoError(t, err)
	assert.True(t, result.Done)

	_, ok = s.Current()
	assert.False(t, ok)

	_, err = s.Answer(true, time.Now())
	assert.Error(t, err, "answering past the end must fail")
}

func TestFlashcardSession_MasteredNowFiresOnce(t *testing.T) {
	words := []models.Word{{ID: "w", Term: "hi", Translation: "привіт", TimesCorrect: 1}}
	s, err := session.NewFlashcardSession(words)
	require.NoError(t, err)

	result, err := s.Answer(true, time.Now())
	require.NoError(t, err)
	assert.True(t, result.MasteredNow, "second consecutive correct crosses the threshold")
}
