// internal/event/types.go
package event

import (
	"survivors-night/internal/defs"
	"survivors-night/internal/types"
)

const (
	EnemyKilled       EventType = "EnemyKilled"
	EnemySpawned      EventType = "EnemySpawned"
	BossSpawned       EventType = "BossSpawned"
	DamageDealt       EventType = "DamageDealt"
	PlayerDamaged     EventType = "PlayerDamaged"
	PlayerLeveledUp   EventType = "PlayerLeveledUp"
	SkillUnlocked     EventType = "SkillUnlocked"
	ItemDropped       EventType = "ItemDropped"
	ItemEffectApplied EventType = "ItemEffectApplied"
	GameOver          EventType = "GameOver"
)

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	EnemyID    types.EntityID
	EnemyType  defs.EnemyType
	Experience int
	X, Y       float64
}

// EnemySpawnedData is the payload of EnemySpawned and BossSpawned.
type EnemySpawnedData struct {
	EnemyID   types.EntityID
	EnemyType defs.EnemyType
	Power     float64
}

// DamageDealtData is the payload of DamageDealt and PlayerDamaged.
type DamageDealtData struct {
	TargetID types.EntityID // zero for the player
	Amount   float64
	X, Y     float64
	Source   string
}

// LevelUpData is the payload of PlayerLeveledUp.
type LevelUpData struct {
	Level     int
	MaxHealth float64
}

// SkillUnlockedData is the payload of SkillUnlocked.
type SkillUnlockedData struct {
	Skill defs.SkillID
	Level int
}

// ItemData is the payload of ItemDropped and ItemEffectApplied.
type ItemData struct {
	ItemType defs.ItemType
	Rarity   defs.Rarity
	Value    float64
	Duration float64
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	SurvivalTime  float64
	EnemiesKilled int
	Level         int
	Score         int
}
