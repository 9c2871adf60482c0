// internal/defs/progression.go
package defs

import "math"

// ExperienceForLevel is the experience needed to advance into level.
// Levels 1 and below cost nothing.
func ExperienceForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Floor(100 * math.Pow(1.5, float64(level-2))))
}

// Per-level growth.
const (
	LevelUpMaxHealth    = 10.0
	LevelUpAttackDamage = 2.0
	LevelUpSpeed        = 3.0
	// LevelUpStatScale is applied to the base range and speed, not compounded.
	LevelUpStatScale = 0.03
)
