package component

import (
	"image/color"

	"survivors-night/pkg/render"
)

// Particle is a short-lived cosmetic dot. It never affects the simulation.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Drag    float64 // velocity kept per second, 1 means none lost
	Color   color.RGBA
	Removed bool
}

// Update moves the particle and reports whether it is still alive.
func (p *Particle) Update(deltaTime float64) bool {
	p.X += p.VX * deltaTime
	p.Y += p.VY * deltaTime
	if p.Drag > 0 && p.Drag < 1 {
		keep := 1 - (1-p.Drag)*deltaTime
		p.VX *= keep
		p.VY *= keep
	}
	p.Life -= deltaTime
	return p.Life > 0
}

// IsRemoved treats a nil particle as removed so compaction drops it.
func (p *Particle) IsRemoved() bool { return p == nil || p.Removed }

func (p *Particle) MarkRemoved() { p.Removed = true }

// Render fades the particle out over its life.
func (p *Particle) Render(s render.Surface) {
	alpha := 1.0
	if p.MaxLife > 0 {
		alpha = p.Life / p.MaxLife
	}
	s.FillCircle(p.X, p.Y, p.Size, render.WithAlpha(p.Color, alpha))
}
