// internal/system/progression.go
package system

import (
	"log/slog"

	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
)

// ProgressionSystem converts kills into experience and experience into levels.
type ProgressionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewProgressionSystem(world *entity.World, eventDispatcher *event.Dispatcher, logger *slog.Logger) *ProgressionSystem {
	if logger == nil {
		logger = discardLogger()
	}
	ps := &ProgressionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("system", "progression"),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ps)
	return ps
}

func (s *ProgressionSystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.EnemyKilledData); ok {
		s.GainExperience(data.Experience)
	}
}

// GainExperience adds amount and levels up as many times as it pays for.
// It returns the number of levels gained.
func (s *ProgressionSystem) GainExperience(amount int) int {
	p := s.world.Player
	if p == nil || amount < 0 {
		return 0
	}
	p.Experience += amount
	levels := 0
	for p.Experience >= p.ExperienceToNext {
		s.levelUp()
		levels++
	}
	return levels
}

func (s *ProgressionSystem) levelUp() {
	p := s.world.Player
	p.Level++
	p.Experience -= p.ExperienceToNext
	p.ExperienceToNext = defs.ExperienceForLevel(p.Level + 1)

	p.MaxHealth += defs.LevelUpMaxHealth
	p.AttackDamage += defs.LevelUpAttackDamage
	p.Speed += defs.LevelUpSpeed

	bonus := 1 + defs.LevelUpStatScale*float64(p.Level-1)
	p.AttackRange = p.BaseAttackRange * bonus
	p.AttackSpeed = p.BaseAttackSpeed * bonus

	p.Magic.ArrowCount = defs.ArrowCount(p.Level)
	p.Magic.MaxChains = defs.MaxChains(p.Level)
	p.Health = p.EffectiveMaxHealth()

	s.logger.Info("level up", "level", p.Level, "max_health", p.MaxHealth, "next", p.ExperienceToNext)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerLeveledUp, Data: event.LevelUpData{
		Level:     p.Level,
		MaxHealth: p.MaxHealth,
	}})
	s.unlockSkills()
}

// unlockSkills announces each skill exactly once, the first time its level is reached.
func (s *ProgressionSystem) unlockSkills() {
	p := s.world.Player
	for _, skill := range p.Magic.Skills() {
		if skill.Unlocked || p.Level < skill.UnlockLevel {
			continue
		}
		skill.Unlocked = true
		s.logger.Info("skill unlocked", "skill", skill.ID, "level", p.Level)
		s.eventDispatcher.Dispatch(event.Event{Type: event.SkillUnlocked, Data: event.SkillUnlockedData{
			Skill: skill.ID,
			Level: p.Level,
		}})
	}
}
