// internal/defs/skills.go
package defs

import "math"

// SkillDefinition is the base tuning of a special attack.
// Range and damage are multipliers over the player's current attack stats.
type SkillDefinition struct {
	ID               SkillID
	UnlockLevel      int
	MaxCooldown      float64
	RangeMultiplier  float64
	DamageMultiplier float64
}

var (
	MagicArrowSkill = SkillDefinition{
		ID: SkillMagicArrow, UnlockLevel: 2,
		MaxCooldown: 1.0, RangeMultiplier: 2.0, DamageMultiplier: 0.8,
	}
	FireballSkill = SkillDefinition{
		ID: SkillFireball, UnlockLevel: 3,
		MaxCooldown: 2.0, RangeMultiplier: 2.0, DamageMultiplier: 1.5,
	}
	ChainLightningSkill = SkillDefinition{
		ID: SkillChainLightning, UnlockLevel: 5,
		MaxCooldown: 5.0, RangeMultiplier: 1.5, DamageMultiplier: 1.2,
	}
)

// SkillOrder is the unlock and announcement order of the special attacks.
var SkillOrder = []SkillDefinition{MagicArrowSkill, FireballSkill, ChainLightningSkill}

const (
	// FireballExplosionFraction is the blast radius as a share of the fireball's range.
	FireballExplosionFraction = 0.25
	BaseMaxChains             = 3
	ChainDamageFalloff        = 0.8
	ChainDelay                = 0.2

	BurnDamage   = 5.0
	BurnDuration = 3.0
	BurnInterval = 1.0

	// MultiTargetSearchFactor widens the attack range when looking for multiple targets.
	MultiTargetSearchFactor = 1.5
	ArrowSpread             = math.Pi / 4
)

type levelStep struct {
	level int
	value int
}

// Highest threshold first.
var attackDirectionSteps = []levelStep{
	{18, 9}, {15, 8}, {12, 7}, {9, 6}, {7, 5}, {5, 4}, {3, 3}, {2, 2},
}

var arrowCountSteps = []levelStep{
	{20, 5}, {15, 4}, {10, 3}, {5, 2},
}

func stepValue(steps []levelStep, level, fallback int) int {
	for _, s := range steps {
		if level >= s.level {
			return s.value
		}
	}
	return fallback
}

// AttackDirections is the number of simultaneous strikes per attack cycle.
func AttackDirections(level int) int {
	return stepValue(attackDirectionSteps, level, 1)
}

// ArrowCount is the magic arrow volley size.
func ArrowCount(level int) int {
	return stepValue(arrowCountSteps, level, 1)
}

// MaxChains is the chain lightning hop budget.
func MaxChains(level int) int {
	if level < 1 {
		level = 1
	}
	return BaseMaxChains + (level - 1)
}

// SkillDamageBonus scales every special attack by 5% per level above 1.
func SkillDamageBonus(level int) float64 {
	return 1 + float64(level-1)*0.05
}
