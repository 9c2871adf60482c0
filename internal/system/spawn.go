// internal/system/spawn.go
package system

import (
	"log/slog"
	"maps"
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

// SpawnStats counts the enemies spawned in a run.
type SpawnStats struct {
	Total  int                    `json:"total" msgpack:"total"`
	ByType map[defs.EnemyType]int `json:"by_type" msgpack:"by_type"`
	Bosses int                    `json:"bosses" msgpack:"bosses"`
}

// SpawnSystem schedules enemies by the difficulty phase tables and gates the boss.
type SpawnSystem struct {
	world           *entity.World
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
	maxEnemies      int
	spawnTimer      float64
	lastBossSpawn   float64
	stats           SpawnStats
}

func NewSpawnSystem(world *entity.World, library *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *slog.Logger, maxEnemies int) *SpawnSystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &SpawnSystem{
		world:           world,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("system", "spawn"),
		maxEnemies:      maxEnemies,
		stats:           SpawnStats{ByType: make(map[defs.EnemyType]int)},
	}
}

// SpawnInterval is the seconds between regular spawns at game time now.
func SpawnInterval(now float64) float64 {
	return 1 / defs.PhaseValue(defs.SpawnRatePhases, now)
}

// PowerMultiplier is the enemy stat scale at game time now.
func PowerMultiplier(now float64) float64 {
	return defs.PhaseValue(defs.PowerPhases, now)
}

func (s *SpawnSystem) Update(deltaTime float64) {
	now := s.world.GameTime
	s.spawnTimer += deltaTime
	if s.spawnTimer >= SpawnInterval(now) {
		s.spawnTimer = 0
		s.SpawnEnemy()
	}

	p := s.world.Player
	if p != nil && now >= defs.BossMinTime && p.Level >= defs.BossMinLevel && now-s.lastBossSpawn >= defs.BossInterval {
		s.spawnBoss()
		s.lastBossSpawn = now
	}
}

func (s *SpawnSystem) full() bool {
	return s.maxEnemies > 0 && s.world.LiveEnemies() >= s.maxEnemies
}

// SpawnEnemy places one weighted-random enemy around the player, scaled by the
// current power multiplier. It silently skips when the field is full or no spot is found.
func (s *SpawnSystem) SpawnEnemy() *component.Enemy {
	if s.full() {
		return nil
	}
	x, y, ok := s.spawnPosition()
	if !ok {
		s.logger.Debug("no valid spawn position")
		return nil
	}
	enemyType := defs.EnemyType(s.rng.ChooseWeighted(defs.EnemySpawnWeights))
	power := PowerMultiplier(s.world.GameTime)
	e := s.spawn(enemyType, x, y, power)
	if e != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{
			EnemyID:   e.ID,
			EnemyType: e.Type,
			Power:     power,
		}})
	}
	return e
}

// spawnBoss drops an unscaled boss at 150 to 200 units from the player without placement checks.
func (s *SpawnSystem) spawnBoss() *component.Enemy {
	if s.full() {
		return nil
	}
	p := s.world.Player
	angle := s.rng.Angle()
	dist := defs.BossMinDistance + s.rng.Float64()*defs.BossDistanceSpread
	e := s.spawn(defs.EnemyBoss, p.X+math.Cos(angle)*dist, p.Y+math.Sin(angle)*dist, 1)
	if e == nil {
		return nil
	}
	s.stats.Bosses++
	s.logger.Info("boss spawned", "id", e.ID, "game_time", s.world.GameTime, "level", p.Level)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: event.EnemySpawnedData{
		EnemyID:   e.ID,
		EnemyType: e.Type,
		Power:     1,
	}})
	return e
}

func (s *SpawnSystem) spawn(enemyType defs.EnemyType, x, y, power float64) *component.Enemy {
	def, ok := s.library.Enemy(enemyType)
	if !ok {
		s.logger.Error("enemy definition not found", "type", enemyType)
		return nil
	}
	e := component.NewEnemy(s.world.NewEntity(), def, x, y)
	e.ApplyPower(power)
	s.world.Enemies = append(s.world.Enemies, e)
	s.stats.Total++
	s.stats.ByType[enemyType]++
	return e
}

// spawnPosition samples the annulus around the player for a point inside the
// playfield and clear of every live enemy.
func (s *SpawnSystem) spawnPosition() (float64, float64, bool) {
	p := s.world.Player
	if p == nil {
		return 0, 0, false
	}
	for attempt := 0; attempt < defs.SpawnMaxAttempts; attempt++ {
		angle := s.rng.Angle()
		dist := s.rng.Range(defs.SpawnMinDistance, defs.SpawnMaxDistance)
		x := p.X + math.Cos(angle)*dist
		y := p.Y + math.Sin(angle)*dist
		if !s.world.Bounds.Contains(x, y) {
			continue
		}
		if _, _, crowded := utils.Nearest(s.world.Enemies, x, y, defs.SpawnMinSeparation, liveEnemy); crowded {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

// Stats returns a copy of the spawn counters.
func (s *SpawnSystem) Stats() SpawnStats {
	out := s.stats
	out.ByType = maps.Clone(s.stats.ByType)
	return out
}
