// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         EnemyType `json:"id"`
	Name       string    `json:"name"`
	Radius     float64   `json:"radius"`
	Speed      float64   `json:"speed"`
	Health     float64   `json:"health"`
	Damage     float64   `json:"damage"`
	Experience int       `json:"experience"`
	Visuals    Visuals   `json:"visuals"`
}

// DefaultEnemies returns the built-in enemy stat table.
func DefaultEnemies() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyZombie: {
			ID: EnemyZombie, Name: "Zombie",
			Radius: 12, Speed: 60, Health: 30, Damage: 15, Experience: 20,
			Visuals: Visuals{Color: color.RGBA{0x8B, 0x45, 0x13, 255}, StrokeColor: color.RGBA{0x65, 0x43, 0x21, 255}},
		},
		EnemyGhost: {
			ID: EnemyGhost, Name: "Ghost",
			Radius: 10, Speed: 80, Health: 20, Damage: 10, Experience: 15,
			Visuals: Visuals{Color: color.RGBA{0x70, 0x80, 0x90, 255}, StrokeColor: color.RGBA{0x4A, 0x4A, 0x4A, 255}},
		},
		EnemyVampire: {
			ID: EnemyVampire, Name: "Vampire",
			Radius: 14, Speed: 70, Health: 40, Damage: 20, Experience: 25,
			Visuals: Visuals{Color: color.RGBA{0x80, 0x00, 0x00, 255}, StrokeColor: color.RGBA{0x4B, 0x00, 0x00, 255}},
		},
		EnemyBoss: {
			ID: EnemyBoss, Name: "Boss",
			Radius: 20, Speed: 50, Health: 100, Damage: 30, Experience: 100,
			Visuals: Visuals{Color: color.RGBA{0xFF, 0x45, 0x00, 255}, StrokeColor: color.RGBA{0xCC, 0x37, 0x00, 255}},
		},
	}
}

// Enemy AI timings, in seconds.
const (
	EnemyAttackInterval = 1.0
	EnemyStunDuration   = 0.5
	EnemyHitFlash       = 0.1
)
