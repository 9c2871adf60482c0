// internal/component/player.go
package component

import (
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/pkg/render"
)

// SkillState is the live cooldown of one special attack.
type SkillState struct {
	defs.SkillDefinition
	Cooldown float64
	Unlocked bool
}

// Ready is true when the skill is unlocked and off cooldown.
func (s *SkillState) Ready() bool {
	return s.Unlocked && s.Cooldown <= 0
}

// Tick runs the cooldown down, stopping at zero.
func (s *SkillState) Tick(deltaTime float64) {
	if s.Cooldown > 0 {
		s.Cooldown -= deltaTime
		if s.Cooldown < 0 {
			s.Cooldown = 0
		}
	}
}

// Trigger puts the skill on its full cooldown.
func (s *SkillState) Trigger() {
	s.Cooldown = s.MaxCooldown
}

// MagicSystem holds the three special attacks and their level-driven counters.
type MagicSystem struct {
	MagicArrow     SkillState
	ArrowCount     int
	Fireball       SkillState
	ExplosionRange float64 // share of fireball range
	ChainLightning SkillState
	MaxChains      int
}

// NewMagicSystem returns all skills locked and ready.
func NewMagicSystem() MagicSystem {
	return MagicSystem{
		MagicArrow:     SkillState{SkillDefinition: defs.MagicArrowSkill},
		ArrowCount:     1,
		Fireball:       SkillState{SkillDefinition: defs.FireballSkill},
		ExplosionRange: defs.FireballExplosionFraction,
		ChainLightning: SkillState{SkillDefinition: defs.ChainLightningSkill},
		MaxChains:      defs.BaseMaxChains,
	}
}

// Skills enumerates every skill. New skills must be added here explicitly.
func (m *MagicSystem) Skills() []*SkillState {
	return []*SkillState{&m.MagicArrow, &m.Fireball, &m.ChainLightning}
}

// Skill returns the state for id, or nil.
func (m *MagicSystem) Skill(id defs.SkillID) *SkillState {
	for _, s := range m.Skills() {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Dash is the short burst of speed on the dash key.
type Dash struct {
	Cooldown float64
	Timer    float64
	Active   bool
}

// Player is the character the run is about.
type Player struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	Health    float64
	MaxHealth float64

	BaseAttackRange float64
	AttackRange     float64
	BaseAttackSpeed float64
	AttackSpeed     float64
	AttackDamage    float64
	Speed           float64

	Level            int
	Experience       int
	ExperienceToNext int

	Stats   Stats
	Effects EffectLedger
	Magic   MagicSystem
	Dash    Dash

	LastAttackTime float64
	SurvivalTime   float64
	HitFlash       float64

	EnemiesKilled    int
	TotalDamageDealt float64
	TotalDamageTaken float64
}

// NewPlayer places a level-1 player at (x, y) with the configured starting stats.
func NewPlayer(x, y float64, cfg config.PlayerConfig) *Player {
	return &Player{
		X:                x,
		Y:                y,
		Radius:           config.PlayerRadius,
		Health:           config.PlayerMaxHealth,
		MaxHealth:        config.PlayerMaxHealth,
		BaseAttackRange:  cfg.AttackRange,
		AttackRange:      cfg.AttackRange,
		BaseAttackSpeed:  config.PlayerBaseAttackSpeed,
		AttackSpeed:      config.PlayerBaseAttackSpeed,
		AttackDamage:     cfg.AttackDamage,
		Speed:            cfg.Speed,
		Level:            1,
		ExperienceToNext: defs.ExperienceForLevel(2),
		Stats:            BaselineStats(),
		Magic:            NewMagicSystem(),
	}
}

func (p *Player) Pos() (float64, float64) { return p.X, p.Y }

func (p *Player) Alive() bool { return p.Health > 0 }

// EffectiveMaxHealth includes the max-health item multiplier.
func (p *Player) EffectiveMaxHealth() float64 {
	return p.MaxHealth * p.Stats.MaxHealth
}

// CurrentDamage is the per-hit auto-attack damage.
func (p *Player) CurrentDamage() float64 {
	return p.AttackDamage * p.Stats.AttackDamage
}

// CurrentRange is the auto-attack reach.
func (p *Player) CurrentRange() float64 {
	return p.AttackRange * p.Stats.AttackRange
}

// CurrentSpeed is the movement speed before dashing.
func (p *Player) CurrentSpeed() float64 {
	return p.Speed * p.Stats.MovementSpeed
}

// AttackInterval is the time between auto-attack cycles.
func (p *Player) AttackInterval() float64 {
	rate := p.AttackSpeed * p.Stats.AttackSpeed
	if rate <= 0 {
		return 0
	}
	return 1 / rate
}

// SkillRange is a skill's reach over the current attack range.
func (p *Player) SkillRange(s *SkillState) float64 {
	return p.CurrentRange() * s.RangeMultiplier
}

// SkillDamage is a skill's damage including the per-level bonus.
func (p *Player) SkillDamage(s *SkillState) float64 {
	return p.CurrentDamage() * s.DamageMultiplier * defs.SkillDamageBonus(p.Level)
}

// TakeDamage lowers health, never below zero, and returns the amount actually lost.
func (p *Player) TakeDamage(amount float64) float64 {
	if amount <= 0 || p.Health <= 0 {
		return 0
	}
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	p.TotalDamageTaken += amount
	p.HitFlash = config.PlayerHitFlash
	return amount
}

// Heal raises health up to the effective maximum.
func (p *Player) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if limit := p.EffectiveMaxHealth(); p.Health > limit {
		p.Health = limit
	}
}

// ApplyItemEffect records a timed boost and rebuilds the stats.
// A zero duration means the default effect duration.
func (p *Player) ApplyItemEffect(t defs.ItemType, value, duration float64) error {
	if duration == 0 {
		duration = defs.DefaultEffectDuration
	}
	if err := p.Effects.Add(t, TimedEffect{Value: value, Duration: duration, StartTime: p.SurvivalTime}); err != nil {
		return err
	}
	p.UpdateStats()
	return nil
}

// UpdateStats rebuilds the multiplier bag from the live effects at the current survival time.
func (p *Player) UpdateStats() {
	p.Stats = p.Effects.Recompute(p.SurvivalTime)
	if limit := p.EffectiveMaxHealth(); p.Health > limit {
		p.Health = limit
	}
}

// Render draws the player body and its attack range.
func (p *Player) Render(s render.Surface) {
	s.StrokeCircle(p.X, p.Y, p.CurrentRange(), 1, render.WithAlpha(config.PlayerColor, 0.25))
	body := config.PlayerColor
	if p.Dash.Active {
		body = config.PlayerDashColor
	}
	if p.HitFlash > 0 {
		body = config.HitFlashColor
	}
	s.FillCircle(p.X, p.Y, p.Radius, body)
	s.StrokeCircle(p.X, p.Y, p.Radius, 2, config.PlayerStrokeColor)
}
