package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/services"
	"github.com/lingualearn/linguaflash/internal/testutil/mocks"
	"github.com/lingualearn/linguaflash/internal/worker"
	"github.com/lingualearn/linguaflash/internal/xp"
)

func newWordService(words *mocks.MockWordRepository, cache *mocks.MockTranslationRepository,
	settings *mocks.MockSettingsRepository, progress *mocks.MockProgressService,
	client *mocks.MockTranslateClient, pool *worker.Pool) services.WordService {
	if pool == nil {
		pool = worker.NewPool(1, 4)
	}
	return services.NewWordService(words, cache, settings, progress, client, pool)
}

func TestAddWord(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressService)
	svc := newWordService(words, new(mocks.MockTranslationRepository), new(mocks.MockSettingsRepository),
		progress, new(mocks.MockTranslateClient), nil)

	var upserted models.Word
	words.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		upserted = args.Get(1).(models.Word)
	}).Return("id", nil)
	p := models.NewUserProgress("u1")
	progress.On("AwardXP", mock.Anything, "u1", xp.RewardWordAdded).Return(&p, false, nil)

	word, err := svc.AddWord(context.Background(), "u1", services.AddWordInput{
		Term:        "  hello  ",
		Translation: "привіт",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, word.ID)
	assert.Equal(t, "hello", word.Term, "term is trimmed")
	assert.Equal(t, "General", word.Category, "category defaults")
	assert.Equal(t, models.WordTypeWord, word.Type)
	assert.NotZero(t, word.CreatedAt)
	assert.Equal(t, word.ID, upserted.ID)
	progress.AssertExpectations(t)
}

func TestAddWord_InfersPhraseType(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressService)
	svc := newWordService(words, new(mocks.MockTranslationRepository), new(mocks.MockSettingsRepository),
		progress, new(mocks.MockTranslateClient), nil)

	words.On("Upsert", mock.Anything, mock.Anything).Return("id", nil)
	p := models.NewUserProgress("u1")
	progress.On("AwardXP", mock.Anything, "u1", xp.RewardWordAdded).Return(&p, false, nil)

	word, err := svc.AddWord(context.Background(), "u1", services.AddWordInput{
		Term:        "thank you",
		Translation: "дякую",
	})

	require.NoError(t, err)
	assert.Equal(t, models.WordTypePhrase, word.Type)
}

func TestAddWord_EmptyTermRejected(t *testing.T) {
	svc := newWordService(new(mocks.MockWordRepository), new(mocks.MockTranslationRepository),
		new(mocks.MockSettingsRepository), new(mocks.MockProgressService), new(mocks.MockTranslateClient), nil)

	_, err := svc.AddWord(context.Background(), "u1", services.AddWordInput{Term: "   "})

	require.Error(t, err)
}

func TestAddWord_MissingTranslationQueuesPrefetch(t *testing.T) {
	words := new(mocks.MockWordRepository)
	settings := new(mocks.MockSettingsRepository)
	progress := new(mocks.MockProgressService)
	pool := worker.NewPool(1, 4) // not started, jobs stay queued
	svc := newWordService(words, new(mocks.MockTranslationRepository), settings, progress,
		new(mocks.MockTranslateClient), pool)

	words.On("Upsert", mock.Anything, mock.Anything).Return("id", nil)
	p := models.NewUserProgress("u1")
	progress.On("AwardXP", mock.Anything, "u1", xp.RewardWordAdded).Return(&p, false, nil)
	settings.On("Get", mock.Anything, "u1").Return(nil, nil)

	_, err := svc.AddWord(context.Background(), "u1", services.AddWordInput{Term: "hello"})

	require.NoError(t, err)
	assert.Equal(t, 1, pool.Pending(), "a translation prefetch job is enqueued")
}

func TestDeleteWord_NotFound(t *testing.T) {
	words := new(mocks.MockWordRepository)
	svc := newWordService(words, new(mocks.MockTranslationRepository), new(mocks.MockSettingsRepository),
		new(mocks.MockProgressService), new(mocks.MockTranslateClient), nil)

	words.On("Get", mock.Anything, "u1", "missing").Return(nil, nil)

	err := svc.DeleteWord(context.Background(), "u1", "missing")

	require.Error(t, err)
	words.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestSeedStarterWords(t *testing.T) {
	words := new(mocks.MockWordRepository)
	svc := newWordService(words, new(mocks.MockTranslationRepository), new(mocks.MockSettingsRepository),
		new(mocks.MockProgressService), new(mocks.MockTranslateClient), nil)

	words.On("Seed", mock.Anything, "u1", mock.MatchedBy(func(seed []models.Word) bool {
		return len(seed) > 0
	})).Return(8, nil)

	n, err := svc.SeedStarterWords(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
