package services

import (
	"context"
	"strings"
	"time"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/translate"
)

// Translation is a lookup result.
type Translation struct {
	Text       string `json:"text"`
	Translated string `json:"translated"`
	From       string `json:"from"`
	To         string `json:"to"`
	Cached     bool   `json:"cached"`
}

// TranslateService looks up translations cache-first. Upstream failures never
// touch local word or progress state.
type TranslateService interface {
	Translate(ctx context.Context, userID, text, from, to string) (*Translation, error)
}

type translateService struct {
	cache    repository.TranslationRepository
	settings repository.SettingsRepository
	client   translate.Client
}

// NewTranslateService creates a new TranslateService
func NewTranslateService(cache repository.TranslationRepository, settings repository.SettingsRepository, client translate.Client) TranslateService {
	return &translateService{cache: cache, settings: settings, client: client}
}

func (s *translateService) Translate(ctx context.Context, userID, text, from, to string) (*Translation, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.NewValidationError("text", "must not be empty")
	}

	if from == "" || to == "" {
		defFrom, defTo := s.defaultPair(ctx, userID)
		if from == "" {
			from = defFrom
		}
		if to == "" {
			to = defTo
		}
	}

	now := time.Now()
	if cached, ok, err := s.cache.Get(ctx, text, from, to, now); err != nil {
		log.Warn("translation cache read failed: %v", err)
	} else if ok {
		log.Debug("translation cache hit: %q %s->%s", text, from, to)
		return &Translation{Text: text, Translated: cached, From: from, To: to, Cached: true}, nil
	}

	translated, err := s.client.Translate(ctx, text, from, to)
	if err != nil {
		log.Warn("translation lookup failed: %v", err)
		return nil, errors.NewUpstreamError("translation", err)
	}
	if translated == "" {
		return nil, errors.NewNotFoundError("translation", text)
	}

	if err := s.cache.Put(ctx, text, from, to, translated, now); err != nil {
		// Cache write failure is not worth failing the lookup over.
		log.Warn("failed to cache translation: %v", err)
	}
	return &Translation{Text: text, Translated: translated, From: from, To: to}, nil
}

// defaultPair reads the user's language pair, falling back to defaults. The
// lookup direction is target -> native: users translate foreign terms home.
func (s *translateService) defaultPair(ctx context.Context, userID string) (string, string) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil || settings == nil {
		def := models.DefaultSettings(userID)
		return def.TargetLanguage, def.NativeLanguage
	}
	return settings.TargetLanguage, settings.NativeLanguage
}
