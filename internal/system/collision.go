// internal/system/collision.go
package system

import (
	"survivors-night/internal/config"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

// CollisionSystem resolves player contact with enemies and items after everything has moved.
type CollisionSystem struct {
	world                *entity.World
	combat               *CombatSystem
	items                *ItemSystem
	eventDispatcher      *event.Dispatcher
	effects              *VisualEffectSystem
	contactDestroysEnemy bool
}

func NewCollisionSystem(world *entity.World, combat *CombatSystem, items *ItemSystem, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem, contactDestroysEnemy bool) *CollisionSystem {
	return &CollisionSystem{
		world:                world,
		combat:               combat,
		items:                items,
		eventDispatcher:      eventDispatcher,
		effects:              effects,
		contactDestroysEnemy: contactDestroysEnemy,
	}
}

// Update runs the contact pass. With contactDestroysEnemy set, a touching enemy
// deals its damage once and dies as a kill; otherwise contact is left to the enemy AI.
func (s *CollisionSystem) Update() {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}

	if s.contactDestroysEnemy {
		for _, e := range s.world.Enemies {
			if !e.Alive() || !utils.CirclesOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
				continue
			}
			if dealt := p.TakeDamage(e.Damage); dealt > 0 {
				s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageDealtData{
					TargetID: 0,
					Amount:   dealt,
					X:        p.X,
					Y:        p.Y,
					Source:   SourceContact,
				}})
			}
			if s.effects != nil {
				s.effects.EmitBurst(e.X, e.Y, 5, 50, config.HitFlashColor)
				s.effects.Shake(config.ShakeOnHitStrength, config.ShakeOnHitDuration)
			}
			s.combat.KillEnemy(e)
		}
	}

	for _, it := range s.world.Items {
		if it.IsRemoved() || !utils.CirclesOverlap(p.X, p.Y, p.Radius, it.X, it.Y, it.Radius) {
			continue
		}
		// Malformed items are logged and dropped by Pickup.
		_ = s.items.Pickup(it)
	}
}
