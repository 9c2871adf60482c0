// internal/component/status_effect.go
package component

import (
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/pkg/render"
)

// BurnEffect is damage over time attached to one enemy.
type BurnEffect struct {
	Target   *Enemy
	Damage   float64 // per tick
	Interval float64
	Duration float64 // remaining
	LastTick float64 // time since the last tick
	Removed  bool
}

// NewBurnEffect returns the standard fireball burn on target.
func NewBurnEffect(target *Enemy) *BurnEffect {
	return &BurnEffect{
		Target:   target,
		Damage:   defs.BurnDamage,
		Interval: defs.BurnInterval,
		Duration: defs.BurnDuration,
	}
}

func (b *BurnEffect) IsRemoved() bool { return b == nil || b.Removed }

func (b *BurnEffect) MarkRemoved() { b.Removed = true }

// Render draws a flickering ring around the burning target.
func (b *BurnEffect) Render(s render.Surface) {
	if b.Target == nil || !b.Target.Alive() {
		return
	}
	s.StrokeCircle(b.Target.X, b.Target.Y, b.Target.Radius+2, 2, render.WithAlpha(config.BurnColor, 0.7))
}
