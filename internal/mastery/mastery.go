package mastery

import (
	"time"

	"github.com/lingualearn/linguaflash/internal/models"
)

const (
	// MaxLevel is the top of the 0-5 proficiency scale.
	MaxLevel = 5
	// Threshold is the consecutive-correct count at which a word counts as mastered.
	Threshold = 2
)

// ApplyReviewOutcome computes a word's next state after one review. Mastery
// moves by at most one step per review and stays within [0, MaxLevel]. A miss
// resets the consecutive-correct counter and the mastered flag. The caller is
// responsible for persisting the result and for firing any mastery-achieved
// event when IsMastered transitions to true.
func ApplyReviewOutcome(w models.Word, wasCorrect bool, now time.Time) models.Word {
	if wasCorrect {
		if w.MasteryLevel < MaxLevel {
			w.MasteryLevel++
		}
		w.TimesCorrect++
	} else {
		if w.MasteryLevel > 0 {
			w.MasteryLevel--
		}
		w.TimesCorrect = 0
	}
	w.IsMastered = w.TimesCorrect >= Threshold
	w.LastReviewed = now.UnixMilli()
	return w
}
