// internal/system/movement.go
package system

import (
	"log/slog"
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

// EnemySystem drives every enemy through chase, attack and stunned.
// Enemies always know where the player is.
type EnemySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	logger          *slog.Logger
}

func NewEnemySystem(world *entity.World, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem, logger *slog.Logger) *EnemySystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &EnemySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		logger:          logger.With("system", "enemy"),
	}
}

// Update advances each enemy. A dead, escaped or faulting enemy is marked for removal.
func (s *EnemySystem) Update(deltaTime float64) {
	p := s.world.Player
	if p == nil {
		return
	}
	for _, e := range s.world.Enemies {
		if e.IsRemoved() {
			continue
		}
		if !SafeUpdate(s.logger, "enemy", e.ID, func() { s.updateEnemy(e, p, deltaTime) }) {
			e.MarkRemoved()
		}
	}
}

func (s *EnemySystem) updateEnemy(e *component.Enemy, p *component.Player, deltaTime float64) {
	if e.Health <= 0 {
		e.MarkRemoved()
		return
	}
	e.AnimationTime += deltaTime
	if e.HitFlash > 0 {
		e.HitFlash -= deltaTime
	}

	switch e.State {
	case component.StateStunned:
		e.StunnedTime -= deltaTime
		if e.StunnedTime <= 0 {
			e.StunnedTime = 0
			e.State = component.StateChase
		}
	case component.StateAttack:
		if !s.inContact(e, p) {
			e.State = component.StateChase
			break
		}
		s.attack(e, p)
	default:
		s.chase(e, p, deltaTime)
	}

	if s.world.Bounds.OutOfBounds(e.X, e.Y, config.EnemyBoundsMargin) {
		s.logger.Debug("enemy left the playfield", "id", e.ID, "type", e.Type)
		e.MarkRemoved()
	}
}

func (s *EnemySystem) inContact(e *component.Enemy, p *component.Player) bool {
	return utils.CirclesOverlap(e.X, e.Y, e.Radius, p.X, p.Y, p.Radius)
}

// chase steps toward the player, or switches to attack once touching.
func (s *EnemySystem) chase(e *component.Enemy, p *component.Player, deltaTime float64) {
	e.State = component.StateChase
	dx, dy := p.X-e.X, p.Y-e.Y
	dist := math.Hypot(dx, dy)
	if dist <= e.Radius+p.Radius {
		e.State = component.StateAttack
		return
	}
	step := e.Speed * deltaTime
	e.X += dx / dist * step
	e.Y += dy / dist * step
}

// attack hits the player at most once per interval on the enemy's own clock, then stuns itself.
func (s *EnemySystem) attack(e *component.Enemy, p *component.Player) {
	if e.AnimationTime-e.LastAttackTime < defs.EnemyAttackInterval {
		return
	}
	e.LastAttackTime = e.AnimationTime
	if dealt := p.TakeDamage(e.Damage); dealt > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageDealtData{
			Amount: dealt,
			X:      p.X,
			Y:      p.Y,
			Source: SourceEnemy,
		}})
		if s.effects != nil {
			s.effects.EmitBurst(p.X, p.Y, 5, 50, config.HitFlashColor)
			s.effects.Shake(config.ShakeOnHitStrength, config.ShakeOnHitDuration)
		}
	}
	e.State = component.StateStunned
	e.StunnedTime = defs.EnemyStunDuration
}
