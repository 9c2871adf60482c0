// Package projectile holds the player's special-attack projectiles.
// The set is closed: Fireball, MagicArrow and ChainLightning are the only implementations.
package projectile

import (
	"image/color"

	"survivors-night/internal/component"
	"survivors-night/pkg/render"
)

// Kind tags a projectile variant.
type Kind string

const (
	KindFireball       Kind = "fireball"
	KindMagicArrow     Kind = "magic_arrow"
	KindChainLightning Kind = "chain_lightning"
)

// Projectile is the shared contract of every variant.
type Projectile interface {
	Kind() Kind
	// Update advances the projectile. It returns false once the projectile should be removed.
	Update(deltaTime float64, w World) bool
	Render(s render.Surface)
	IsFinished() bool

	sealed()
}

// EnemyQuery gives read access to the enemies on the field.
// The slice may contain dead enemies; callers filter with Alive.
type EnemyQuery interface {
	Enemies() []*component.Enemy
}

// DamageDealer applies damage on the player's behalf and settles kills.
type DamageDealer interface {
	DealDamage(target *component.Enemy, amount float64, source Kind) float64
}

// EffectRegistrar registers transient effects owned by the game loop.
type EffectRegistrar interface {
	AddBurn(target *component.Enemy)
	EmitBurst(x, y float64, count int, speed float64, clr color.RGBA)
	Shake(intensity, duration float64)
}

// World is everything a projectile may touch.
type World interface {
	EnemyQuery
	DamageDealer
	EffectRegistrar
}

func liveEnemy(e *component.Enemy) bool { return e.Alive() }

type trailPoint struct {
	x, y float64
	age  float64
}

func ageTrail(trail []trailPoint, deltaTime, maxAge float64) []trailPoint {
	kept := trail[:0]
	for _, p := range trail {
		p.age += deltaTime
		if p.age <= maxAge {
			kept = append(kept, p)
		}
	}
	return kept
}
