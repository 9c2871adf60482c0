package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivors-night/internal/defs"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

func TestSpawnPositionsAreValid(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player

	for i := 0; i < 40; i++ {
		h.spawner.SpawnEnemy()
	}
	require.NotEmpty(t, h.world.Enemies)

	for i, e := range h.world.Enemies {
		d := utils.Distance(p.X, p.Y, e.X, e.Y)
		assert.GreaterOrEqual(t, d, defs.SpawnMinDistance-1e-9)
		assert.LessOrEqual(t, d, defs.SpawnMaxDistance+1e-9)
		assert.True(t, h.world.Bounds.Contains(e.X, e.Y))
		for _, other := range h.world.Enemies[:i] {
			assert.Greater(t, utils.Distance(e.X, e.Y, other.X, other.Y), defs.SpawnMinSeparation)
		}
	}
	assert.Equal(t, len(h.world.Enemies), h.spawner.Stats().Total)
	assert.Equal(t, len(h.world.Enemies), h.count(event.EnemySpawned))
}

func TestSpawnRespectsMaxEnemies(t *testing.T) {
	h := newHarness(t)
	spawner := NewSpawnSystem(h.world, h.library, utils.NewPRNGService(3), h.dispatcher, nil, 3)

	for i := 0; i < 20; i++ {
		spawner.SpawnEnemy()
	}
	assert.Len(t, h.world.Enemies, 3)
}

func TestSpawnSkipsWhenNoRoom(t *testing.T) {
	h := newHarness(t)
	h.world.Bounds = utils.Bounds{Width: 50, Height: 50}
	h.world.Player.X, h.world.Player.Y = 25, 25

	assert.Nil(t, h.spawner.SpawnEnemy())
	assert.Empty(t, h.world.Enemies)
}

func TestSpawnAppliesPower(t *testing.T) {
	h := newHarness(t)
	h.world.GameTime = 130

	e := h.spawner.SpawnEnemy()
	require.NotNil(t, e)

	def, ok := h.library.Enemy(e.Type)
	require.True(t, ok)
	m := PowerMultiplier(130)
	assert.Greater(t, m, 1.0)
	assert.Equal(t, math.Floor(def.Health*m), e.Health)
	assert.Equal(t, math.Floor(def.Damage*m), e.Damage)
	assert.Equal(t, math.Floor(def.Speed*(1+(m-1)*0.5)), e.Speed)
}

func TestSpawnTimerFollowsRatePhase(t *testing.T) {
	h := newHarness(t)
	assert.InDelta(t, 0.5, SpawnInterval(0), 1e-9)
	assert.InDelta(t, 0.4, SpawnInterval(30), 1e-9)

	h.spawner.Update(0.3)
	assert.Empty(t, h.world.Enemies)
	h.spawner.Update(0.3)
	assert.Len(t, h.world.Enemies, 1)
	h.spawner.Update(0.3)
	assert.Len(t, h.world.Enemies, 1, "timer restarts after a spawn")
}

func TestBossGate(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player

	p.Level = 5
	h.world.GameTime = 60
	h.spawner.Update(0)
	assert.Zero(t, h.spawner.Stats().Bosses, "the first boss waits a full interval")

	p.Level = 4
	h.world.GameTime = 120
	h.spawner.Update(0)
	assert.Zero(t, h.spawner.Stats().Bosses, "level gate")

	p.Level = 5
	h.spawner.Update(0)
	require.Equal(t, 1, h.spawner.Stats().Bosses)
	require.Equal(t, 1, h.count(event.BossSpawned))

	boss := h.world.Enemies[len(h.world.Enemies)-1]
	assert.Equal(t, defs.EnemyBoss, boss.Type)
	d := utils.Distance(p.X, p.Y, boss.X, boss.Y)
	assert.GreaterOrEqual(t, d, defs.BossMinDistance-1e-9)
	assert.LessOrEqual(t, d, defs.BossMinDistance+defs.BossDistanceSpread+1e-9)

	h.world.GameTime = 200
	h.spawner.Update(0)
	assert.Equal(t, 1, h.spawner.Stats().Bosses)

	h.world.GameTime = 240
	h.spawner.Update(0)
	assert.Equal(t, 2, h.spawner.Stats().Bosses)
}
