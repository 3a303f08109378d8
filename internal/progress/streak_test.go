package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/progress"
)

func TestToday(t *testing.T) {
	ts := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", progress.Today(ts))
}

func TestRecordActivity_FirstEver(t *testing.T) {
	p := models.NewUserProgress("u1")

	updated, changed := progress.RecordActivity(p, "2024-03-07")

	assert.True(t, changed)
	assert.Equal(t, 1, updated.CurrentStreak)
	assert.Equal(t, "2024-03-07", updated.LastStudyDate)
	assert.Equal(t, []string{"2024-03-07"}, updated.StudyHistory)
}

func TestRecordActivity_SameDayIsNoop(t *testing.T) {
	p := models.NewUserProgress("u1")
	p, _ = progress.RecordActivity(p, "2024-03-07")

	updated, changed := progress.RecordActivity(p, "2024-03-07")

	assert.False(t, changed)
	assert.Equal(t, 1, updated.CurrentStreak)
	assert.Len(t, updated.StudyHistory, 1, "same day must not be recorded twice")
}

func TestRecordActivity_ConsecutiveDayExtends(t *testing.T) {
	p := models.NewUserProgress("u1")
	p, _ = progress.RecordActivity(p, "2024-03-07")

	updated, changed := progress.RecordActivity(p, "2024-03-08")

	assert.True(t, changed)
	assert.Equal(t, 2, updated.CurrentStreak)
}

func TestRecordActivity_GapResets(t *testing.T) {
	p := models.NewUserProgress("u1")
	p, _ = progress.RecordActivity(p, "2024-03-07")
	p, _ = progress.RecordActivity(p, "2024-03-08")

	updated, _ := progress.RecordActivity(p, "2024-03-10")

	assert.Equal(t, 1, updated.CurrentStreak, "a missed day restarts the streak")
	assert.Len(t, updated.StudyHistory, 3, "history keeps every studied day")
}

func TestRecordActivity_AcrossMonthBoundary(t *testing.T) {
	p := models.NewUserProgress("u1")
	p, _ = progress.RecordActivity(p, "2024-02-29")

	updated, _ := progress.RecordActivity(p, "2024-03-01")

	assert.Equal(t, 2, updated.CurrentStreak)
}

func TestRecordActivity_DoesNotMutateInput(t *testing.T) {
	p := models.NewUserProgress("u1")
	p, _ = progress.RecordActivity(p, "2024-03-07")
	before := len(p.StudyHistory)

	_, _ = progress.RecordActivity(p, "2024-03-08")

	assert.Len(t, p.StudyHistory, before, "input history must stay untouched")
}
