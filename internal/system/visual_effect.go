// internal/system/visual_effect.go
package system

import (
	"image/color"
	"log/slog"
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/entity"
	"survivors-night/internal/utils"
)

// ScreenShake is the active camera shake request.
type ScreenShake struct {
	Intensity float64
	Duration  float64
	Elapsed   float64
}

// Active reports whether the shake still has time left.
func (s ScreenShake) Active() bool {
	return s.Duration > 0 && s.Elapsed < s.Duration
}

// VisualEffectSystem owns particles and screen shake. Nothing here feeds back into combat.
type VisualEffectSystem struct {
	world  *entity.World
	rng    *utils.PRNGService
	logger *slog.Logger
	shake  ScreenShake
}

// NewVisualEffectSystem creates the effect system. rng must not be the simulation generator.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService, logger *slog.Logger) *VisualEffectSystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &VisualEffectSystem{world: world, rng: rng, logger: logger.With("system", "visual_effect")}
}

// Update moves particles, retires expired ones and advances the shake.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, p := range s.world.Particles {
		if p.IsRemoved() {
			continue
		}
		alive := true
		if !SafeUpdate(s.logger, "particle", 0, func() { alive = p.Update(deltaTime) }) || !alive {
			p.MarkRemoved()
		}
	}
	if s.shake.Active() {
		s.shake.Elapsed += deltaTime
	}
}

// EmitBurst sprays count particles out of (x, y).
func (s *VisualEffectSystem) EmitBurst(x, y float64, count int, speed float64, clr color.RGBA) {
	for i := 0; i < count; i++ {
		a := s.rng.Angle()
		v := speed * s.rng.Range(0.5, 1)
		life := s.rng.Range(0.3, 0.6)
		s.world.Particles = append(s.world.Particles, &component.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(a) * v,
			VY:      math.Sin(a) * v,
			Life:    life,
			MaxLife: life,
			Size:    s.rng.Range(1.5, 3),
			Drag:    0.9,
			Color:   clr,
		})
	}
}

// AttackTrail drops a short-lived line of sparks between attacker and target.
func (s *VisualEffectSystem) AttackTrail(x1, y1, x2, y2 float64) {
	const steps = 5
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		s.world.Particles = append(s.world.Particles, &component.Particle{
			X:       utils.Lerp(x1, x2, t),
			Y:       utils.Lerp(y1, y2, t),
			Life:    0.15,
			MaxLife: 0.15,
			Size:    2,
			Color:   config.AttackLineColor,
		})
	}
}

// Shake starts a camera shake. A weaker request never cuts a stronger one short.
func (s *VisualEffectSystem) Shake(intensity, duration float64) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	if s.shake.Active() && s.shake.Intensity > intensity {
		return
	}
	s.shake = ScreenShake{Intensity: intensity, Duration: duration}
}

// ShakeState returns the current shake request.
func (s *VisualEffectSystem) ShakeState() ScreenShake {
	return s.shake
}

// ShakeOffset is the camera displacement for this frame. It decays to zero over
// the shake duration and is derived from elapsed time only.
func (s *VisualEffectSystem) ShakeOffset() (float64, float64) {
	if !s.shake.Active() {
		return 0, 0
	}
	amp := s.shake.Intensity * (1 - s.shake.Elapsed/s.shake.Duration)
	return amp * math.Sin(s.shake.Elapsed*53), amp * math.Cos(s.shake.Elapsed*47)
}
