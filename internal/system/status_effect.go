// internal/system/status_effect.go
package system

import (
	"log/slog"

	"survivors-night/internal/component"
	"survivors-night/internal/entity"
	"survivors-night/internal/types"
)

// StatusEffectSystem ticks burns. Burn damage is player damage and can score kills.
type StatusEffectSystem struct {
	world  *entity.World
	combat *CombatSystem
	logger *slog.Logger
}

func NewStatusEffectSystem(world *entity.World, combat *CombatSystem, logger *slog.Logger) *StatusEffectSystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &StatusEffectSystem{world: world, combat: combat, logger: logger.With("system", "status_effect")}
}

// AddBurn attaches a fresh burn to target. Burns on the same enemy stack.
func (s *StatusEffectSystem) AddBurn(target *component.Enemy) *component.BurnEffect {
	if target == nil || !target.Alive() {
		return nil
	}
	burn := component.NewBurnEffect(target)
	s.world.Burns = append(s.world.Burns, burn)
	return burn
}

// Update applies due ticks. A tick lands once LastTick reaches the interval;
// the burn expires on the first update that finds no duration left.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, b := range s.world.Burns {
		if b.IsRemoved() {
			continue
		}
		var id types.EntityID
		if b.Target != nil {
			id = b.Target.ID
		}
		ok := SafeUpdate(s.logger, "burn", id, func() { s.tick(b, deltaTime) })
		if !ok {
			b.MarkRemoved()
		}
	}
}

func (s *StatusEffectSystem) tick(b *component.BurnEffect, deltaTime float64) {
	if b.Target == nil || b.Target.Removed {
		b.MarkRemoved()
		return
	}
	if b.LastTick >= b.Interval {
		b.LastTick = 0
		if b.Target.Alive() {
			s.combat.DealDamage(b.Target, b.Damage, SourceBurn)
		}
	}
	b.LastTick += deltaTime
	if b.Duration <= 0 {
		b.MarkRemoved()
		return
	}
	b.Duration -= deltaTime
}
