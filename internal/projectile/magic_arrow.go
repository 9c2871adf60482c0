package projectile

import (
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/utils"
	"survivors-night/pkg/render"
)

const (
	arrowSpeed      = 200.0
	arrowSize       = 4.0
	arrowGuideDelay = 0.1
	arrowSeekRadius = 150.0
	arrowTurnRate   = math.Pi / 2 // radians per second
	arrowTrailAge   = 0.3
)

// MagicArrow flies straight for a moment, then homes on the nearest enemy.
type MagicArrow struct {
	X, Y        float64
	Angle       float64
	Damage      float64
	Lifetime    float64
	MaxLifetime float64
	Target      *component.Enemy
	Hit         bool

	trail []trailPoint
}

var _ Projectile = (*MagicArrow)(nil)

// NewMagicArrow fires an arrow from (x, y) along angle. It lives long enough to cover rng.
func NewMagicArrow(x, y, angle, rng, damage float64) *MagicArrow {
	lifetime := rng / arrowSpeed
	return &MagicArrow{
		X:           x,
		Y:           y,
		Angle:       angle,
		Damage:      damage,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
	}
}

func (a *MagicArrow) Kind() Kind { return KindMagicArrow }

func (a *MagicArrow) sealed() {}

// Guided is true while the arrow has a live target.
func (a *MagicArrow) Guided() bool { return a.Target != nil }

func (a *MagicArrow) Update(deltaTime float64, w World) bool {
	if a.IsFinished() {
		return false
	}
	a.trail = append(ageTrail(a.trail, deltaTime, arrowTrailAge), trailPoint{x: a.X, y: a.Y})

	if a.Target != nil && !a.Target.Alive() {
		a.Target = nil
	}
	if a.Target == nil && a.Lifetime < a.MaxLifetime-arrowGuideDelay {
		if e, _, ok := utils.Nearest(w.Enemies(), a.X, a.Y, arrowSeekRadius, liveEnemy); ok {
			a.Target = e
		}
	}
	if a.Target != nil {
		want := math.Atan2(a.Target.Y-a.Y, a.Target.X-a.X)
		a.Angle = utils.TurnToward(a.Angle, want, arrowTurnRate*deltaTime)
	}

	a.X += math.Cos(a.Angle) * arrowSpeed * deltaTime
	a.Y += math.Sin(a.Angle) * arrowSpeed * deltaTime
	a.Lifetime -= deltaTime

	for _, e := range w.Enemies() {
		if e.Alive() && utils.CirclesOverlap(a.X, a.Y, arrowSize, e.X, e.Y, e.Radius) {
			w.DealDamage(e, a.Damage, KindMagicArrow)
			w.EmitBurst(a.X, a.Y, 5, 60, config.MagicArrowColor)
			a.Hit = true
			a.Target = nil
			return false
		}
	}
	return a.Lifetime > 0
}

func (a *MagicArrow) IsFinished() bool {
	return a.Hit || a.Lifetime <= 0
}

func (a *MagicArrow) Render(s render.Surface) {
	if a.IsFinished() {
		return
	}
	for _, p := range a.trail {
		s.FillCircle(p.x, p.y, arrowSize*0.5, render.WithAlpha(config.MagicArrowColor, 1-p.age/arrowTrailAge))
	}
	tailX := a.X - math.Cos(a.Angle)*arrowSize*3
	tailY := a.Y - math.Sin(a.Angle)*arrowSize*3
	s.Line(tailX, tailY, a.X, a.Y, 2, config.MagicArrowColor)
	s.FillCircle(a.X, a.Y, arrowSize, config.MagicArrowColor)
}
