// internal/defs/types.go
package defs

import "image/color"

// EnemyType is the tag that selects an enemy's stat table.
type EnemyType string

const (
	EnemyZombie  EnemyType = "zombie"
	EnemyGhost   EnemyType = "ghost"
	EnemyVampire EnemyType = "vampire"
	EnemyBoss    EnemyType = "boss"
)

// ItemType names the player stat an item boosts.
type ItemType string

const (
	ItemAttackDamage  ItemType = "attackDamage"
	ItemAttackSpeed   ItemType = "attackSpeed"
	ItemAttackRange   ItemType = "attackRange"
	ItemMovementSpeed ItemType = "movementSpeed"
	ItemMaxHealth     ItemType = "maxHealth"
	ItemHealthRegen   ItemType = "healthRegen"
)

// ItemTypes lists every item type in drop order.
var ItemTypes = []ItemType{
	ItemAttackDamage,
	ItemAttackSpeed,
	ItemAttackRange,
	ItemMovementSpeed,
	ItemMaxHealth,
	ItemHealthRegen,
}

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Rarity is an item's tier.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// SkillID names one of the player's special attacks.
type SkillID string

const (
	SkillMagicArrow     SkillID = "magicArrow"
	SkillFireball       SkillID = "fireball"
	SkillChainLightning SkillID = "chainLightning"
)

// Visuals holds the draw colours of a definition.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	StrokeColor color.RGBA `json:"stroke_color"`
}
