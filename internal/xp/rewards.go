package xp

// Fixed XP rewards per activity type. These are deliberately compile-time
// constants, not runtime configuration.
const (
	RewardFlashcardCorrect = 10
	RewardWordMastered     = 25
	RewardMatchComplete    = 30
	RewardBossDefeated     = 50
	RewardDailyStreak      = 20
	RewardWordAdded        = 5
)
