// internal/system/state.go
package system

import (
	"fmt"
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
)

// FinalStats is the summary shown on the game-over screen and written to reports.
type FinalStats struct {
	SurvivalTime  float64 `json:"survival_time" msgpack:"survival_time"`
	EnemiesKilled int     `json:"enemies_killed" msgpack:"enemies_killed"`
	Level         int     `json:"level" msgpack:"level"`
	Score         int     `json:"score" msgpack:"score"`
	DamageDealt   float64 `json:"damage_dealt" msgpack:"damage_dealt"`
	DamageTaken   float64 `json:"damage_taken" msgpack:"damage_taken"`
}

// Score is floor(time*10 + kills*100 + level*1000).
func Score(survivalTime float64, kills, level int) int {
	return int(math.Floor(survivalTime*10 + float64(kills)*100 + float64(level)*1000))
}

// FormatSurvivalTime renders seconds as m:ss.
func FormatSurvivalTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Summarize builds the final stats of p.
func Summarize(p *component.Player) FinalStats {
	if p == nil {
		return FinalStats{}
	}
	return FinalStats{
		SurvivalTime:  p.SurvivalTime,
		EnemiesKilled: p.EnemiesKilled,
		Level:         p.Level,
		Score:         Score(p.SurvivalTime, p.EnemiesKilled, p.Level),
		DamageDealt:   p.TotalDamageDealt,
		DamageTaken:   p.TotalDamageTaken,
	}
}

// StateSystem watches for the end of the run and announces it once.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	over            bool
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update reports true on the tick the player dies and on every tick after.
func (s *StateSystem) Update() bool {
	if s.over {
		return true
	}
	p := s.world.Player
	if p == nil || p.Alive() {
		return false
	}
	s.over = true
	stats := Summarize(p)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
		SurvivalTime:  stats.SurvivalTime,
		EnemiesKilled: stats.EnemiesKilled,
		Level:         stats.Level,
		Score:         stats.Score,
	}})
	return true
}

func (s *StateSystem) IsOver() bool { return s.over }
