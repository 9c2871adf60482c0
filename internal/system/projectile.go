// internal/system/projectile.go
package system

import (
	"image/color"
	"log/slog"

	"survivors-night/internal/component"
	"survivors-night/internal/entity"
	"survivors-night/internal/projectile"
)

// ProjectileSystem advances the player's projectiles and is the world they see.
type ProjectileSystem struct {
	world        *entity.World
	combatSystem *CombatSystem
	burns        *StatusEffectSystem
	effects      *VisualEffectSystem
	logger       *slog.Logger
	faulted      map[projectile.Projectile]bool
}

var _ projectile.World = (*ProjectileSystem)(nil)

func NewProjectileSystem(world *entity.World, combatSystem *CombatSystem, burns *StatusEffectSystem, effects *VisualEffectSystem, logger *slog.Logger) *ProjectileSystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &ProjectileSystem{
		world:        world,
		combatSystem: combatSystem,
		burns:        burns,
		effects:      effects,
		logger:       logger.With("system", "projectile"),
		faulted:      make(map[projectile.Projectile]bool),
	}
}

// Spawn adds a projectile to the field.
func (s *ProjectileSystem) Spawn(p projectile.Projectile) {
	s.world.Projectiles = append(s.world.Projectiles, p)
}

// Discard marks p for removal on the next Update. Used when drawing p failed.
func (s *ProjectileSystem) Discard(p projectile.Projectile) {
	s.faulted[p] = true
}

// Discarded reports whether p is waiting to be dropped.
func (s *ProjectileSystem) Discarded(p projectile.Projectile) bool {
	return s.faulted[p]
}

// Update advances every projectile once and drops the finished, faulting or discarded ones.
func (s *ProjectileSystem) Update(deltaTime float64) {
	kept := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		if p == nil {
			continue
		}
		if s.faulted[p] {
			delete(s.faulted, p)
			continue
		}
		alive := false
		ok := SafeUpdate(s.logger, "projectile", 0, func() { alive = p.Update(deltaTime, s) })
		if ok && alive {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.world.Projectiles); i++ {
		s.world.Projectiles[i] = nil
	}
	s.world.Projectiles = kept
}

func (s *ProjectileSystem) Enemies() []*component.Enemy {
	return s.world.Enemies
}

func (s *ProjectileSystem) DealDamage(target *component.Enemy, amount float64, source projectile.Kind) float64 {
	return s.combatSystem.DealDamage(target, amount, string(source))
}

func (s *ProjectileSystem) AddBurn(target *component.Enemy) {
	s.burns.AddBurn(target)
}

func (s *ProjectileSystem) EmitBurst(x, y float64, count int, speed float64, clr color.RGBA) {
	if s.effects != nil {
		s.effects.EmitBurst(x, y, count, speed, clr)
	}
}

func (s *ProjectileSystem) Shake(intensity, duration float64) {
	if s.effects != nil {
		s.effects.Shake(intensity, duration)
	}
}
