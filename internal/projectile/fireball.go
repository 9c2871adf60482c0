package projectile

import (
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/utils"
	"survivors-night/pkg/render"
)

const (
	fireballSpeed       = 150.0
	fireballSize        = 6.0
	fireballDisplayTime = 1.0
	fireballTrailAge    = 0.2
	// MinFalloff is the least share of full damage anything inside the blast takes.
	MinFalloff = 0.3
)

// FireballState is the fireball's lifecycle stage.
type FireballState int

const (
	FireballActive FireballState = iota
	FireballDisplaying
	FireballFinished
)

// Falloff is the damage share at distance d from a blast of radius r.
// It is exactly 1 at the centre and never below MinFalloff.
func Falloff(d, r float64) float64 {
	if d == 0 || r <= 0 {
		return 1
	}
	return math.Max(MinFalloff, 1-d/r)
}

// Fireball flies straight and explodes on the first enemy it touches.
type Fireball struct {
	X, Y            float64
	Angle           float64
	Range           float64
	Damage          float64
	ExplosionRange  float64 // share of Range
	Lifetime        float64
	State           FireballState
	DisplayTime     float64
	ExplosionRadius float64
	Hits            int

	trail []trailPoint
}

var _ Projectile = (*Fireball)(nil)

// NewFireball launches a fireball from (x, y) along angle.
func NewFireball(x, y, angle, rng, damage, explosionRange float64) *Fireball {
	return &Fireball{
		X:              x,
		Y:              y,
		Angle:          angle,
		Range:          rng,
		Damage:         damage,
		ExplosionRange: explosionRange,
		Lifetime:       rng / fireballSpeed,
	}
}

func (f *Fireball) Kind() Kind { return KindFireball }

func (f *Fireball) sealed() {}

func (f *Fireball) Update(deltaTime float64, w World) bool {
	switch f.State {
	case FireballActive:
		f.trail = append(ageTrail(f.trail, deltaTime, fireballTrailAge), trailPoint{x: f.X, y: f.Y})
		f.X += math.Cos(f.Angle) * fireballSpeed * deltaTime
		f.Y += math.Sin(f.Angle) * fireballSpeed * deltaTime
		f.Lifetime -= deltaTime

		if f.touchesEnemy(w) {
			f.explode(w)
			return true
		}
		if f.Lifetime <= 0 {
			f.State = FireballFinished
			return false
		}
		return true
	case FireballDisplaying:
		f.DisplayTime -= deltaTime
		if f.DisplayTime <= 0 {
			f.State = FireballFinished
			return false
		}
		return true
	default:
		return false
	}
}

func (f *Fireball) touchesEnemy(w World) bool {
	for _, e := range w.Enemies() {
		if e.Alive() && utils.CirclesOverlap(f.X, f.Y, fireballSize, e.X, e.Y, e.Radius) {
			return true
		}
	}
	return false
}

// explode deals falloff damage to every live enemy in the blast and sets them burning.
func (f *Fireball) explode(w World) {
	f.State = FireballDisplaying
	f.DisplayTime = fireballDisplayTime
	f.ExplosionRadius = f.ExplosionRange * f.Range
	f.trail = nil

	// Snapshot: a kill may spawn items but never enemies, still avoid aliasing the live slice.
	targets := append([]*component.Enemy(nil), w.Enemies()...)
	for _, e := range targets {
		if !e.Alive() {
			continue
		}
		d := utils.Distance(f.X, f.Y, e.X, e.Y)
		if d > f.ExplosionRadius {
			continue
		}
		w.DealDamage(e, f.Damage*Falloff(d, f.ExplosionRadius), KindFireball)
		f.Hits++
		if e.Alive() {
			w.AddBurn(e)
		}
	}
	w.EmitBurst(f.X, f.Y, 20, 150, config.FireballColor)
	w.Shake(3, 0.3)
}

func (f *Fireball) IsFinished() bool {
	return f.State == FireballFinished
}

func (f *Fireball) Render(s render.Surface) {
	switch f.State {
	case FireballActive:
		for i, p := range f.trail {
			alpha := (1 - p.age/fireballTrailAge) * 0.7
			size := fireballSize * float64(i+1) / float64(len(f.trail)+1) * 0.5
			s.FillCircle(p.x, p.y, size, render.WithAlpha(config.FireballColor, alpha))
		}
		s.FillCircle(f.X, f.Y, fireballSize, config.FireballColor)
		s.StrokeCircle(f.X, f.Y, fireballSize, 2, render.DarkenColor(config.FireballColor))
	case FireballDisplaying:
		progress := f.DisplayTime / fireballDisplayTime
		alpha := math.Pow(progress, 1.5)
		s.FillCircle(f.X, f.Y, f.ExplosionRadius, render.WithAlpha(config.ExplosionColor, math.Max(0.05, alpha*0.15)))
		s.StrokeCircle(f.X, f.Y, f.ExplosionRadius, 3*progress, render.WithAlpha(config.ExplosionColor, alpha*0.8))
	}
}
