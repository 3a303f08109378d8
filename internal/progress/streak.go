// Package progress implements the daily streak engine. All functions are pure
// over their inputs; the calendar date is caller-supplied so behavior stays
// deterministic under test.
package progress

import (
	"time"

	"github.com/lingualearn/linguaflash/internal/models"
)

// DateLayout is the ISO calendar date format used for streak bookkeeping.
const DateLayout = "2006-01-02"

// Today formats a point in time as the ISO calendar date streaks are keyed by.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// RecordActivity applies a qualifying activity on the given day. It is
// idempotent per calendar day: the second and later calls on the same day
// return the input unchanged and report changed=false. A one-day gap extends
// the streak, anything larger restarts it at 1.
func RecordActivity(p models.UserProgress, today string) (models.UserProgress, bool) {
	if p.LastStudyDate == today {
		return p, false
	}

	switch {
	case p.LastStudyDate == "":
		p.CurrentStreak = 1
	case dayGap(p.LastStudyDate, today) == 1:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	p.LastStudyDate = today
	history := make([]string, len(p.StudyHistory), len(p.StudyHistory)+1)
	copy(history, p.StudyHistory)
	p.StudyHistory = append(history, today)
	return p, true
}

// dayGap returns the number of calendar days between two ISO dates. Unparsable
// dates count as a broken streak rather than an error; the engine is total.
func dayGap(from, to string) int {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return -1
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}
