// Package session implements the game session state machines (flashcards,
// battle, matching pairs, word builder) as plain objects decoupled from any
// rendering layer. All randomness flows through an injected *rand.Rand so
// tests can pin a seed and assert exact outputs.
package session

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"

	"github.com/lingualearn/linguaflash/internal/models"
)

// SelectFlashcardWords orders words weakest-first, ascending by
// masteryLevel then lastReviewed, and returns up to limit of them.
func SelectFlashcardWords(words []models.Word, limit int) []models.Word {
	sorted := make([]models.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MasteryLevel != sorted[j].MasteryLevel {
			return sorted[i].MasteryLevel < sorted[j].MasteryLevel
		}
		return sorted[i].LastReviewed < sorted[j].LastReviewed
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// BattleWordPool filters words to the mastery band for a battle level: low
// tiers draw from barely-known words, high tiers from well-known ones. If the
// band holds fewer than MinBattleWords entries the full set is used instead.
func BattleWordPool(words []models.Word, level int) []models.Word {
	var pool []models.Word
	switch {
	case level <= 3:
		pool = lo.Filter(words, func(w models.Word, _ int) bool {
			return w.MasteryLevel <= 2
		})
	case level <= 6:
		// No lower bound: never-reviewed words stay eligible mid-tier, so a
		// mostly-new dictionary does not collapse to the full-set fallback.
		pool = lo.Filter(words, func(w models.Word, _ int) bool {
			return w.MasteryLevel <= 4
		})
	default:
		pool = lo.Filter(words, func(w models.Word, _ int) bool {
			return w.MasteryLevel >= 3
		})
	}
	if len(pool) < MinBattleWords {
		return words
	}
	return pool
}

// SampleWords picks n distinct words uniformly without replacement. When n
// exceeds the input size, all words are returned (in random order).
func SampleWords(words []models.Word, n int, rng *rand.Rand) []models.Word {
	perm := rng.Perm(len(words))
	if n > len(words) {
		n = len(words)
	}
	out := make([]models.Word, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, words[idx])
	}
	return out
}

// Distractors returns up to count translations drawn uniformly from words
// other than current.
func Distractors(words []models.Word, current models.Word, count int, rng *rand.Rand) []string {
	others := lo.Filter(words, func(w models.Word, _ int) bool {
		return w.ID != current.ID
	})
	picked := SampleWords(others, count, rng)
	return lo.Map(picked, func(w models.Word, _ int) string {
		return w.Translation
	})
}

// AnswerOptions builds the multiple-choice options for a word: three
// distractors plus the correct translation, shuffled so position carries no
// information.
func AnswerOptions(words []models.Word, current models.Word, rng *rand.Rand) []string {
	options := append(Distractors(words, current, 3, rng), current.Translation)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
