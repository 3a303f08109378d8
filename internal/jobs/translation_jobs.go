// Package jobs holds the background work units run on the worker pool.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/translate"
)

// TranslationPrefetchJob fills in the translation of a word that was added
// without one. A failed lookup leaves the word untouched; the user can still
// translate it manually later.
type TranslationPrefetchJob struct {
	UserID string
	WordID string
	From   string
	To     string

	Words      repository.WordRepository
	Cache      repository.TranslationRepository
	Translator translate.Client
}

func (j *TranslationPrefetchJob) Name() string {
	return fmt.Sprintf("translation-prefetch:%s", j.WordID)
}

func (j *TranslationPrefetchJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	word, err := j.Words.Get(ctx, j.UserID, j.WordID)
	if err != nil {
		return err
	}
	if word == nil || word.Translation != "" {
		return nil
	}

	translated, err := j.Translator.Translate(ctx, word.Term, j.From, j.To)
	if err != nil {
		return fmt.Errorf("translate %q: %w", word.Term, err)
	}
	if translated == "" {
		log.Debug("no translation found for %q", word.Term)
		return nil
	}

	now := time.Now()
	if err := j.Cache.Put(ctx, word.Term, j.From, j.To, translated, now); err != nil {
		log.Warn("failed to cache prefetched translation: %v", err)
	}

	word.Translation = translated
	if _, err := j.Words.Upsert(ctx, *word); err != nil {
		return err
	}
	log.Info("prefetched translation for %q", word.Term)
	return nil
}

// CachePurgeJob deletes expired translation cache entries.
type CachePurgeJob struct {
	Cache repository.TranslationRepository
}

func (j *CachePurgeJob) Name() string { return "translation-cache-purge" }

func (j *CachePurgeJob) Run(ctx context.Context) error {
	n, err := j.Cache.PurgeExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Info("purged %d expired cached translations", n)
	}
	return nil
}
