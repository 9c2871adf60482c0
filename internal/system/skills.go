// internal/system/skills.go
package system

import (
	"log/slog"

	"survivors-night/internal/component"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/input"
	"survivors-night/internal/projectile"
	"survivors-night/internal/utils"
)

// SkillSystem casts the three special attacks, automatically and on request.
type SkillSystem struct {
	world       *entity.World
	projectiles *ProjectileSystem
	rng         *utils.PRNGService
	logger      *slog.Logger
}

func NewSkillSystem(world *entity.World, projectiles *ProjectileSystem, rng *utils.PRNGService, logger *slog.Logger) *SkillSystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &SkillSystem{world: world, projectiles: projectiles, rng: rng, logger: logger.With("system", "skills")}
}

func (s *SkillSystem) nearest(p *component.Player, maxDist float64) (*component.Enemy, bool) {
	e, _, ok := utils.Nearest(s.world.Enemies, p.X, p.Y, maxDist, liveEnemy)
	return e, ok
}

// AutoCast fires the magic arrow and fireball whenever they are ready and an enemy is in attack range.
// Chain lightning is manual only.
func (s *SkillSystem) AutoCast() {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}
	if p.Magic.MagicArrow.Ready() {
		if _, ok := s.nearest(p, p.CurrentRange()); ok {
			s.CastMagicArrow()
		}
	}
	if p.Magic.Fireball.Ready() {
		if target, ok := s.nearest(p, p.CurrentRange()); ok {
			s.CastFireball(target)
		}
	}
}

// ManualCast handles the skill keys. Locked skills ignore their key.
func (s *SkillSystem) ManualCast(in input.State) {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}
	if in.MagicArrow {
		s.CastMagicArrow()
	}
	if in.Fireball {
		s.CastFireball(nil)
	}
	if in.ChainLightning {
		s.CastChainLightning()
	}
}

// CastMagicArrow looses a volley of homing arrows. Each aims at the nearest enemy
// in range with a random spread, or anywhere when nothing is near.
func (s *SkillSystem) CastMagicArrow() bool {
	p := s.world.Player
	skill := &p.Magic.MagicArrow
	if !skill.Ready() {
		return false
	}
	skill.Trigger()

	for i := 0; i < p.Magic.ArrowCount; i++ {
		angle := s.rng.Angle()
		if target, ok := s.nearest(p, p.CurrentRange()); ok {
			angle = angleTo(p.X, p.Y, target.X, target.Y) + s.rng.Range(-defs.ArrowSpread, defs.ArrowSpread)
		}
		s.projectiles.Spawn(projectile.NewMagicArrow(p.X, p.Y, angle, p.SkillRange(skill), p.SkillDamage(skill)))
	}
	s.logger.Debug("magic arrow cast", "arrows", p.Magic.ArrowCount)
	return true
}

// CastFireball launches a fireball at target, or at the nearest enemy within fireball range.
// The cooldown is spent even when no target is found.
func (s *SkillSystem) CastFireball(target *component.Enemy) bool {
	p := s.world.Player
	skill := &p.Magic.Fireball
	if !skill.Ready() {
		return false
	}
	skill.Trigger()

	reach := p.SkillRange(skill)
	if target == nil || !target.Alive() {
		var ok bool
		if target, ok = s.nearest(p, reach); !ok {
			s.logger.Debug("fireball declined, nothing in range", "range", reach)
			return false
		}
	}
	angle := angleTo(p.X, p.Y, target.X, target.Y)
	s.projectiles.Spawn(projectile.NewFireball(p.X, p.Y, angle, reach, p.SkillDamage(skill), p.Magic.ExplosionRange))
	return true
}

// CastChainLightning strikes the nearest enemy in attack range and lets the bolt hop.
// The cooldown is spent even when no target is found.
func (s *SkillSystem) CastChainLightning() bool {
	p := s.world.Player
	skill := &p.Magic.ChainLightning
	if !skill.Ready() {
		return false
	}
	skill.Trigger()

	first, ok := s.nearest(p, p.CurrentRange())
	if !ok {
		s.logger.Debug("chain lightning declined, nothing in range")
		return false
	}
	s.projectiles.Spawn(projectile.NewChainLightning(p.X, p.Y, first, p.SkillRange(skill), p.SkillDamage(skill), p.Magic.MaxChains))
	return true
}
