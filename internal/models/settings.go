package models

// UserSettings holds per-user preferences. The core reads NativeLanguage and
// TargetLanguage for translation context and never mutates settings itself.
type UserSettings struct {
	UserID               string `json:"user_id"`
	NativeLanguage       string `json:"native_language"`
	TargetLanguage       string `json:"target_language"`
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationTime     string `json:"notification_time"`
	DailyGoal            int    `json:"daily_goal"`
	AutoReadFlashcards   bool   `json:"auto_read_flashcards"`
}

// DefaultSettings returns the settings applied before a user customizes anything.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:               userID,
		NativeLanguage:       "uk",
		TargetLanguage:       "en",
		Theme:                "system",
		NotificationsEnabled: false,
		NotificationTime:     "19:00",
		DailyGoal:            5,
		AutoReadFlashcards:   false,
	}
}
