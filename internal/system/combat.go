// internal/system/combat.go
package system

import (
	"survivors-night/internal/component"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

// CombatSystem resolves the player's auto-attack and every point of damage the player deals.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		effects:         effects,
	}
}

// AutoAttack fires one attack cycle when the interval has elapsed on the survival clock.
// The cycle is spent even when nothing is in range.
func (s *CombatSystem) AutoAttack() {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}
	interval := p.AttackInterval()
	if interval <= 0 || p.SurvivalTime-p.LastAttackTime < interval {
		return
	}
	p.LastAttackTime = p.SurvivalTime

	for _, target := range s.SelectTargets() {
		s.strike(p, target)
	}
}

// SelectTargets picks this cycle's victims. Level 1 hits the nearest enemy in range.
// Higher levels search a wider radius: a lone enemy takes every strike, otherwise
// each strike goes to a different enemy, nearest first.
func (s *CombatSystem) SelectTargets() []*component.Enemy {
	p := s.world.Player
	if p == nil {
		return nil
	}
	if p.Level <= 1 {
		target, _, ok := utils.Nearest(s.world.Enemies, p.X, p.Y, p.CurrentRange(), liveEnemy)
		if !ok {
			return nil
		}
		return []*component.Enemy{target}
	}

	directions := defs.AttackDirections(p.Level)
	candidates := utils.WithinSorted(s.world.Enemies, p.X, p.Y, p.CurrentRange()*defs.MultiTargetSearchFactor, liveEnemy)
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		targets := make([]*component.Enemy, directions)
		for i := range targets {
			targets[i] = candidates[0]
		}
		return targets
	}
	if len(candidates) > directions {
		candidates = candidates[:directions]
	}
	return candidates
}

func (s *CombatSystem) strike(p *component.Player, target *component.Enemy) {
	if !target.Alive() {
		return
	}
	if s.effects != nil {
		s.effects.AttackTrail(p.X, p.Y, target.X, target.Y)
	}
	s.DealDamage(target, p.CurrentDamage(), SourceAutoAttack)
}

// DealDamage applies player-owned damage to target and settles the kill.
// It returns the health actually removed.
func (s *CombatSystem) DealDamage(target *component.Enemy, amount float64, source string) float64 {
	if target == nil || !target.Alive() || !utils.IsFinite(amount) {
		return 0
	}
	dealt := target.TakeDamage(amount)
	if dealt <= 0 {
		return 0
	}
	if p := s.world.Player; p != nil {
		p.TotalDamageDealt += dealt
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.DamageDealt, Data: event.DamageDealtData{
		TargetID: target.ID,
		Amount:   dealt,
		X:        target.X,
		Y:        target.Y,
		Source:   source,
	}})
	if target.Health <= 0 {
		s.KillEnemy(target)
	}
	return dealt
}

// KillEnemy removes target and announces the kill. Experience and drops are
// handed out by the EnemyKilled subscribers. A second call for the same enemy is a no-op.
func (s *CombatSystem) KillEnemy(target *component.Enemy) {
	if target == nil || target.Removed {
		return
	}
	target.MarkRemoved()
	if p := s.world.Player; p != nil {
		p.EnemiesKilled++
	}
	if s.effects != nil {
		s.effects.EmitBurst(target.X, target.Y, 8, 80, target.Visuals.Color)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		EnemyID:    target.ID,
		EnemyType:  target.Type,
		Experience: target.Experience,
		X:          target.X,
		Y:          target.Y,
	}})
}
