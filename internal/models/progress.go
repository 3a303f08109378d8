package models

// UserProgress is the one-per-user learning record. Level is always derived
// from XP; CompletedDungeonLevels is an append-only set of beaten battle tiers.
type UserProgress struct {
	UserID                 string   `json:"user_id"`
	CurrentStreak          int      `json:"current_streak"`
	LastStudyDate          string   `json:"last_study_date"` // YYYY-MM-DD, empty = never studied
	StudyHistory           []string `json:"study_history"`
	XP                     int      `json:"xp"`
	Level                  int      `json:"level"`
	CompletedDungeonLevels []int    `json:"completed_dungeon_levels"`
}

// NewUserProgress returns the zero-activity progress record for a user.
func NewUserProgress(userID string) UserProgress {
	return UserProgress{
		UserID:                 userID,
		CurrentStreak:          0,
		LastStudyDate:          "",
		StudyHistory:           []string{},
		XP:                     0,
		Level:                  1,
		CompletedDungeonLevels: []int{},
	}
}

// HasCompletedLevel reports whether the battle tier was already beaten.
func (p UserProgress) HasCompletedLevel(level int) bool {
	for _, l := range p.CompletedDungeonLevels {
		if l == level {
			return true
		}
	}
	return false
}
