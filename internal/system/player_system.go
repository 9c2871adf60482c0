// internal/system/player_system.go
package system

import (
	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/entity"
	"survivors-night/internal/input"
)

// PlayerSystem runs the player's share of a tick in a fixed order:
// movement, dash, auto-attack, regen, clocks, cooldowns, automatic casts, manual casts.
type PlayerSystem struct {
	world  *entity.World
	combat *CombatSystem
	skills *SkillSystem
}

func NewPlayerSystem(world *entity.World, combat *CombatSystem, skills *SkillSystem) *PlayerSystem {
	return &PlayerSystem{world: world, combat: combat, skills: skills}
}

func (s *PlayerSystem) Update(deltaTime float64, in input.State) {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}

	s.move(p, in, deltaTime)
	if in.Dash && p.Dash.Cooldown <= 0 && !p.Dash.Active {
		p.Dash.Cooldown = config.PlayerDashCooldown
		p.Dash.Timer = config.PlayerDashDuration
		p.Dash.Active = true
	}

	s.combat.AutoAttack()

	if regen := p.Stats.HealthRegen; regen > 0 && p.Health < p.EffectiveMaxHealth() {
		p.Heal(regen * deltaTime)
	}

	p.SurvivalTime += deltaTime
	if p.HitFlash > 0 {
		p.HitFlash -= deltaTime
	}
	s.tickDash(p, deltaTime)
	for _, skill := range p.Magic.Skills() {
		skill.Tick(deltaTime)
	}
	p.UpdateStats()

	s.skills.AutoCast()
	s.skills.ManualCast(in)
}

func (s *PlayerSystem) move(p *component.Player, in input.State, deltaTime float64) {
	mx, my := in.Movement()
	if mx == 0 && my == 0 {
		p.VX, p.VY = 0, 0
		return
	}
	speed := p.CurrentSpeed()
	if p.Dash.Active {
		speed *= config.PlayerDashMultiplier
	}
	p.VX, p.VY = mx*speed, my*speed
	p.X += p.VX * deltaTime
	p.Y += p.VY * deltaTime
	p.X, p.Y = s.world.Bounds.ClampCircle(p.X, p.Y, p.Radius)
}

func (s *PlayerSystem) tickDash(p *component.Player, deltaTime float64) {
	if p.Dash.Cooldown > 0 {
		p.Dash.Cooldown -= deltaTime
	}
	if p.Dash.Timer > 0 {
		p.Dash.Timer -= deltaTime
		if p.Dash.Timer <= 0 {
			p.Dash.Active = false
		}
	}
}
