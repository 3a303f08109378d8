// Package xp implements the experience-point and leveling engine: a fixed
// threshold table mapping cumulative XP to levels, human-readable level titles,
// and the award operation that keeps UserProgress.Level derived from XP.
package xp

import "github.com/lingualearn/linguaflash/internal/models"

// xpThresholds[i] is the cumulative XP required to reach level i+1.
// Level 1 starts at 0 XP.
var xpThresholds = []int{
	0, 100, 250, 450, 700,
	1000, 1400, 1900, 2500, 3200,
	4000, 5000, 6200, 7600, 9200,
	11000, 13000, 15200, 17600, 20200,
	23000, 26000, 29200, 32600, 36200,
	40000, 44000, 48200, 52600, 57200,
	62000, 67000, 72200, 77600, 83200,
	89000, 95000, 101200, 107600, 114200,
	121000, 128000, 135200, 142600, 150200,
	158000, 166000, 174200, 182600, 191200,
}

// levelIncrement is the per-level XP step past the end of the table.
const levelIncrement = 8000

// CalculateLevel returns the largest level whose threshold is at or below xp.
// It is non-decreasing in xp and never returns less than 1.
func CalculateLevel(xp int) int {
	for i := len(xpThresholds) - 1; i >= 0; i-- {
		if xp >= xpThresholds[i] {
			level := i + 1
			if level == len(xpThresholds) {
				// Extrapolate past the table.
				level += (xp - xpThresholds[i]) / levelIncrement
			}
			return level
		}
	}
	return 1
}

// XPForLevel returns the cumulative XP threshold for a level.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	if level > len(xpThresholds) {
		last := xpThresholds[len(xpThresholds)-1]
		return last + (level-len(xpThresholds))*levelIncrement
	}
	return xpThresholds[level-1]
}

// LevelProgress describes how far into the current level an XP total sits.
type LevelProgress struct {
	Percentage int `json:"percentage"`
	Current    int `json:"current"`
	Needed     int `json:"needed"`
}

// ProgressToNextLevel returns the position within the current level band.
func ProgressToNextLevel(xp int) LevelProgress {
	level := CalculateLevel(xp)
	floor := XPForLevel(level)
	ceil := XPForLevel(level + 1)
	needed := ceil - floor
	current := xp - floor
	pct := 0
	if needed > 0 {
		pct = int(float64(current)/float64(needed)*100 + 0.5)
	}
	return LevelProgress{Percentage: pct, Current: current, Needed: needed}
}

// LevelTitle maps a level into one of six fixed tiers.
func LevelTitle(level int) string {
	switch {
	case level <= 5:
		return "Amateur"
	case level <= 10:
		return "Apprentice"
	case level <= 20:
		return "Word Explorer"
	case level <= 35:
		return "Word Wizard"
	case level <= 50:
		return "Vocabulary Master"
	default:
		return "Language Legend"
	}
}

// Award adds XP to the progress record and recomputes the level. It reports
// whether the award crossed a level boundary.
func Award(p models.UserProgress, amount int) (models.UserProgress, bool) {
	oldLevel := p.Level
	if oldLevel < 1 {
		oldLevel = 1
	}
	p.XP += amount
	p.Level = CalculateLevel(p.XP)
	return p, p.Level > oldLevel
}
