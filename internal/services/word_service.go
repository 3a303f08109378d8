package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/jobs"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/translate"
	"github.com/lingualearn/linguaflash/internal/worker"
	"github.com/lingualearn/linguaflash/internal/xp"
)

// AddWordInput carries the user-supplied fields of a new word.
type AddWordInput struct {
	Term        string          `json:"term"`
	Translation string          `json:"translation"`
	Phonetic    string          `json:"phonetic"`
	Category    string          `json:"category"`
	Type        models.WordType `json:"type"`
}

// WordService handles dictionary CRUD.
type WordService interface {
	ListWords(ctx context.Context, userID string, filter models.WordFilter) ([]models.Word, error)
	GetWord(ctx context.Context, userID, id string) (*models.Word, error)
	AddWord(ctx context.Context, userID string, input AddWordInput) (*models.Word, error)
	DeleteWord(ctx context.Context, userID, id string) error
	Categories(ctx context.Context, userID string) ([]string, error)
	SeedStarterWords(ctx context.Context, userID string) (int, error)
}

type wordService struct {
	words      repository.WordRepository
	cache      repository.TranslationRepository
	settings   repository.SettingsRepository
	progress   ProgressService
	translator translate.Client
	pool       *worker.Pool
}

// NewWordService creates a new WordService
func NewWordService(
	words repository.WordRepository,
	cache repository.TranslationRepository,
	settings repository.SettingsRepository,
	progress ProgressService,
	translator translate.Client,
	pool *worker.Pool,
) WordService {
	return &wordService{
		words:      words,
		cache:      cache,
		settings:   settings,
		progress:   progress,
		translator: translator,
		pool:       pool,
	}
}

func (s *wordService) ListWords(ctx context.Context, userID string, filter models.WordFilter) ([]models.Word, error) {
	words, err := s.words.List(ctx, userID, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return words, nil
}

func (s *wordService) GetWord(ctx context.Context, userID, id string) (*models.Word, error) {
	word, err := s.words.Get(ctx, userID, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", id)
	}
	return word, nil
}

func (s *wordService) AddWord(ctx context.Context, userID string, input AddWordInput) (*models.Word, error) {
	log := logger.FromContext(ctx)

	term := strings.TrimSpace(input.Term)
	if term == "" {
		return nil, errors.NewValidationError("term", "must not be empty")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "General"
	}
	wordType := input.Type
	if wordType == "" {
		if strings.ContainsRune(term, ' ') {
			wordType = models.WordTypePhrase
		} else {
			wordType = models.WordTypeWord
		}
	}
	if wordType != models.WordTypeWord && wordType != models.WordTypePhrase {
		return nil, errors.NewValidationError("type", "must be 'word' or 'phrase'")
	}

	word := models.Word{
		ID:          uuid.NewString(),
		UserID:      userID,
		Term:        term,
		Translation: strings.TrimSpace(input.Translation),
		Phonetic:    strings.TrimSpace(input.Phonetic),
		Category:    category,
		Type:        wordType,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if _, err := s.words.Upsert(ctx, word); err != nil {
		log.Error("failed to add word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("word added: id=%s, term=%q", word.ID, word.Term)

	if _, _, err := s.progress.AwardXP(ctx, userID, xp.RewardWordAdded); err != nil {
		log.Warn("failed to award XP for added word: %v", err)
	}

	if word.Translation == "" {
		s.enqueuePrefetch(ctx, userID, word.ID)
	}
	return &word, nil
}

// enqueuePrefetch schedules a background translation lookup for a word that
// was added without one.
func (s *wordService) enqueuePrefetch(ctx context.Context, userID, wordID string) {
	log := logger.FromContext(ctx)

	from, to := s.languagePair(ctx, userID)
	job := &jobs.TranslationPrefetchJob{
		UserID:     userID,
		WordID:     wordID,
		From:       to, // the term is in the target language
		To:         from,
		Words:      s.words,
		Cache:      s.cache,
		Translator: s.translator,
	}
	if !s.pool.Submit(job) {
		log.Warn("translation prefetch queue full, word %s left untranslated", wordID)
	}
}

// languagePair returns (native, target) for the user, falling back to defaults.
func (s *wordService) languagePair(ctx context.Context, userID string) (string, string) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil || settings == nil {
		def := models.DefaultSettings(userID)
		return def.NativeLanguage, def.TargetLanguage
	}
	return settings.NativeLanguage, settings.TargetLanguage
}

func (s *wordService) DeleteWord(ctx context.Context, userID, id string) error {
	word, err := s.words.Get(ctx, userID, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if word == nil {
		return errors.NewNotFoundError("word", id)
	}
	if err := s.words.Delete(ctx, userID, id); err != nil {
		return errors.NewInternalError(err)
	}
	logger.FromContext(ctx).Info("word deleted: id=%s", id)
	return nil
}

func (s *wordService) Categories(ctx context.Context, userID string) ([]string, error) {
	categories, err := s.words.Categories(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return categories, nil
}

// starterWords is the seed dictionary for a brand-new user.
var starterWords = []AddWordInput{
	{Term: "hello", Translation: "привіт", Category: "Basics", Type: models.WordTypeWord},
	{Term: "thank you", Translation: "дякую", Category: "Basics", Type: models.WordTypePhrase},
	{Term: "water", Translation: "вода", Category: "Food", Type: models.WordTypeWord},
	{Term: "bread", Translation: "хліб", Category: "Food", Type: models.WordTypeWord},
	{Term: "house", Translation: "будинок", Category: "Home", Type: models.WordTypeWord},
	{Term: "friend", Translation: "друг", Category: "People", Type: models.WordTypeWord},
	{Term: "to learn", Translation: "вчитися", Category: "Verbs", Type: models.WordTypePhrase},
	{Term: "beautiful", Translation: "гарний", Category: "Adjectives", Type: models.WordTypeWord},
}

func (s *wordService) SeedStarterWords(ctx context.Context, userID string) (int, error) {
	now := time.Now().UnixMilli()
	seed := make([]models.Word, 0, len(starterWords))
	for _, input := range starterWords {
		seed = append(seed, models.Word{
			ID:          uuid.NewString(),
			UserID:      userID,
			Term:        input.Term,
			Translation: input.Translation,
			Category:    input.Category,
			Type:        input.Type,
			CreatedAt:   now,
		})
	}

	inserted, err := s.words.Seed(ctx, userID, seed)
	if err != nil {
		return 0, errors.NewInternalError(err)
	}
	return inserted, nil
}
