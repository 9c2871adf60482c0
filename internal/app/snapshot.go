// internal/app/snapshot.go
package app

import (
	"survivors-night/internal/component"
	"survivors-night/internal/defs"
	"survivors-night/internal/system"
)

// SkillSnapshot is the HUD view of one special attack.
type SkillSnapshot struct {
	ID          defs.SkillID `json:"id" msgpack:"id"`
	Unlocked    bool         `json:"unlocked" msgpack:"unlocked"`
	Cooldown    float64      `json:"cooldown" msgpack:"cooldown"`
	MaxCooldown float64      `json:"max_cooldown" msgpack:"max_cooldown"`
}

// Snapshot is a read-only copy of what the HUD and reports show.
type Snapshot struct {
	Tick             int             `json:"tick" msgpack:"tick"`
	GameTime         float64         `json:"game_time" msgpack:"game_time"`
	SurvivalTime     float64         `json:"survival_time" msgpack:"survival_time"`
	X                float64         `json:"x" msgpack:"x"`
	Y                float64         `json:"y" msgpack:"y"`
	Health           float64         `json:"health" msgpack:"health"`
	MaxHealth        float64         `json:"max_health" msgpack:"max_health"`
	Level            int             `json:"level" msgpack:"level"`
	Experience       int             `json:"experience" msgpack:"experience"`
	ExperienceToNext int             `json:"experience_to_next" msgpack:"experience_to_next"`
	EnemiesKilled    int             `json:"enemies_killed" msgpack:"enemies_killed"`
	Enemies          int             `json:"enemies" msgpack:"enemies"`
	Items            int             `json:"items" msgpack:"items"`
	Projectiles      int             `json:"projectiles" msgpack:"projectiles"`
	Dashing          bool            `json:"dashing" msgpack:"dashing"`
	Stats            component.Stats `json:"stats" msgpack:"stats"`
	Skills           []SkillSnapshot `json:"skills" msgpack:"skills"`
	Score            int             `json:"score" msgpack:"score"`
}

// Snapshot captures the current state of the run.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	snap := Snapshot{
		Tick:        g.ticks,
		GameTime:    w.GameTime,
		Enemies:     w.LiveEnemies(),
		Items:       w.LiveItems(),
		Projectiles: len(w.Projectiles),
	}
	p := w.Player
	if p == nil {
		return snap
	}
	snap.SurvivalTime = p.SurvivalTime
	snap.X, snap.Y = p.X, p.Y
	snap.Health = p.Health
	snap.MaxHealth = p.EffectiveMaxHealth()
	snap.Level = p.Level
	snap.Experience = p.Experience
	snap.ExperienceToNext = p.ExperienceToNext
	snap.EnemiesKilled = p.EnemiesKilled
	snap.Dashing = p.Dash.Active
	snap.Stats = p.Stats
	snap.Score = system.Score(p.SurvivalTime, p.EnemiesKilled, p.Level)
	for _, s := range p.Magic.Skills() {
		snap.Skills = append(snap.Skills, SkillSnapshot{
			ID:          s.ID,
			Unlocked:    s.Unlocked,
			Cooldown:    s.Cooldown,
			MaxCooldown: s.MaxCooldown,
		})
	}
	return snap
}

// Report is the end-of-run summary written by the headless runner.
type Report struct {
	RunID    string            `json:"run_id" msgpack:"run_id"`
	Seed     int64             `json:"seed" msgpack:"seed"`
	Ticks    int               `json:"ticks" msgpack:"ticks"`
	GameOver bool              `json:"game_over" msgpack:"game_over"`
	Final    system.FinalStats `json:"final" msgpack:"final"`
	Survival string            `json:"survival" msgpack:"survival"`
	Spawns   system.SpawnStats `json:"spawns" msgpack:"spawns"`
	Drops    system.DropStats  `json:"drops" msgpack:"drops"`
}

// Report summarizes the run so far.
func (g *Game) Report() Report {
	final := g.FinalStats()
	return Report{
		RunID:    g.RunID.String(),
		Seed:     g.Config.Seed,
		Ticks:    g.ticks,
		GameOver: g.IsOver(),
		Final:    final,
		Survival: system.FormatSurvivalTime(final.SurvivalTime),
		Spawns:   g.SpawnSystem.Stats(),
		Drops:    g.ItemSystem.Stats(),
	}
}
