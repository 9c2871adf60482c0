package component

import (
	"math"

	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/types"
	"survivors-night/pkg/render"
)

// AIState is the enemy behaviour state.
type AIState string

const (
	StateChase   AIState = "chase"
	StateAttack  AIState = "attack"
	StateStunned AIState = "stunned"
)

// Enemy is a hostile entity. It is dropped once its health reaches zero.
type Enemy struct {
	ID         types.EntityID
	Type       defs.EnemyType
	X, Y       float64
	Radius     float64
	Speed      float64
	Health     float64
	MaxHealth  float64
	Damage     float64
	Experience int
	Visuals    defs.Visuals

	State          AIState
	StunnedTime    float64
	LastAttackTime float64
	AnimationTime  float64
	HitFlash       float64

	Removed bool
}

// NewEnemy builds an enemy from its definition at full health.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, x, y float64) *Enemy {
	return &Enemy{
		ID:         id,
		Type:       def.ID,
		X:          x,
		Y:          y,
		Radius:     def.Radius,
		Speed:      def.Speed,
		Health:     def.Health,
		MaxHealth:  def.Health,
		Damage:     def.Damage,
		Experience: def.Experience,
		Visuals:    def.Visuals,
		State:      StateChase,
	}
}

// ApplyPower scales a freshly spawned enemy by the difficulty multiplier.
// Speed grows by half of the excess over 1.
func (e *Enemy) ApplyPower(m float64) {
	if m <= 1 {
		return
	}
	e.Health = math.Floor(e.Health * m)
	e.MaxHealth = math.Floor(e.MaxHealth * m)
	e.Damage = math.Floor(e.Damage * m)
	e.Speed = math.Floor(e.Speed * (1 + (m-1)*0.5))
}

func (e *Enemy) Pos() (float64, float64) { return e.X, e.Y }

func (e *Enemy) Alive() bool { return e != nil && !e.Removed && e.Health > 0 }

func (e *Enemy) IsRemoved() bool { return e == nil || e.Removed }

func (e *Enemy) MarkRemoved() { e.Removed = true }

// TakeDamage lowers health, never below zero, and returns the amount actually lost.
func (e *Enemy) TakeDamage(amount float64) float64 {
	if amount <= 0 || e.Health <= 0 {
		return 0
	}
	if amount > e.Health {
		amount = e.Health
	}
	e.Health -= amount
	e.HitFlash = defs.EnemyHitFlash
	return amount
}

// Render draws the body, a hit flash and a health bar once damaged.
func (e *Enemy) Render(s render.Surface) {
	body := e.Visuals.Color
	if e.HitFlash > 0 {
		body = config.HitFlashColor
	}
	s.FillCircle(e.X, e.Y, e.Radius, body)
	s.StrokeCircle(e.X, e.Y, e.Radius, 2, e.Visuals.StrokeColor)
	if e.State == StateStunned {
		s.StrokeCircle(e.X, e.Y, e.Radius+3, 1, config.TextLightColor)
	}

	if e.MaxHealth > 0 && e.Health < e.MaxHealth {
		ratio := e.Health / e.MaxHealth
		w := e.Radius * 2
		y := e.Y - e.Radius - 8
		s.FillRect(e.X-e.Radius, y, w, 4, render.DarkenColor(e.Visuals.StrokeColor))
		s.FillRect(e.X-e.Radius, y, w*ratio, 4, render.HealthColor(ratio))
	}
}
