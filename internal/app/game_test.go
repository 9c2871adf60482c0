package app

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/event"
	"survivors-night/internal/input"
	"survivors-night/pkg/render"
)

func newTestGame(t *testing.T, in input.Source) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	g, err := NewGame(cfg, in, nil)
	require.NoError(t, err)
	return g
}

type recordingHUD struct {
	calls []Snapshot
}

func (h *recordingHUD) Update(snap Snapshot, elapsed float64, enemyCount int) {
	h.calls = append(h.calls, snap)
}

func TestSanitizeDelta(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
		ok   bool
	}{
		{math.NaN(), config.DefaultDeltaTime, false},
		{math.Inf(1), config.DefaultDeltaTime, false},
		{-0.1, config.DefaultDeltaTime, false},
		{0, config.DefaultDeltaTime, false},
		{0.01, 0.01, true},
		{1.5, config.MaxDeltaTime, true},
	}
	for _, c := range cases {
		got, ok := SanitizeDelta(c.in)
		assert.Equal(t, c.want, got, "delta %v", c.in)
		assert.Equal(t, c.ok, ok, "delta %v", c.in)
	}
}

func TestUpdateAdvancesClocks(t *testing.T) {
	g := newTestGame(t, input.Idle())

	for i := 0; i < 60; i++ {
		g.Update(1.0 / 60)
	}

	assert.Equal(t, 60, g.Ticks())
	assert.InDelta(t, 1.0, g.World.GameTime, 1e-9)
	assert.InDelta(t, 1.0, g.World.Player.SurvivalTime, 1e-9)
	assert.NotEmpty(t, g.World.Enemies, "the spawner runs")
}

func TestBadDeltaUsesDefaultFrame(t *testing.T) {
	g := newTestGame(t, nil)
	g.Update(math.NaN())
	assert.InDelta(t, config.DefaultDeltaTime, g.World.GameTime, 1e-12)
}

func TestGameOverFreezesRun(t *testing.T) {
	g := newTestGame(t, input.Idle())
	var over []event.Event
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) { over = append(over, e) }))

	g.Update(1.0 / 60)
	g.World.Player.Health = 0
	assert.True(t, g.Update(1.0/60))
	assert.True(t, g.IsOver())

	frozen := g.World.GameTime
	assert.True(t, g.Update(1.0/60))
	assert.Equal(t, frozen, g.World.GameTime)
	assert.Len(t, over, 1)
}

func TestHUDReceivesSnapshots(t *testing.T) {
	g := newTestGame(t, input.Idle())
	hud := &recordingHUD{}
	g.HUD = hud

	g.Update(1.0 / 60)
	g.Update(1.0 / 60)

	require.Len(t, hud.calls, 2)
	snap := hud.calls[1]
	assert.Equal(t, 2, snap.Tick)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 100.0, snap.MaxHealth)
	assert.Len(t, snap.Skills, 3)
}

func TestRunsAreReproducibleFromSeed(t *testing.T) {
	a := newTestGame(t, input.Circle(240))
	b := newTestGame(t, input.Circle(240))

	for i := 0; i < 1200; i++ {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	assert.Equal(t, sa, sb)
	assert.Equal(t, a.SpawnSystem.Stats(), b.SpawnSystem.Stats())
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestCompactionRemovesDeadEnemies(t *testing.T) {
	g := newTestGame(t, input.Idle())
	g.Update(1.0 / 60)
	e := g.SpawnSystem.SpawnEnemy()
	require.NotNil(t, e)
	e.Health = 0

	g.Update(1.0 / 60)

	for _, live := range g.World.Enemies {
		assert.NotSame(t, e, live)
	}
}

func TestDefinitionOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"zombie","name":"Tough Zombie","radius":12,"speed":60,"health":300,"damage":15,"experience":20}]`), 0o644))

	cfg := config.Default()
	cfg.Definitions.Enemies = path
	g, err := NewGame(cfg, nil, nil)
	require.NoError(t, err)

	def, ok := g.Library.Enemy(defs.EnemyZombie)
	require.True(t, ok)
	assert.Equal(t, 300.0, def.Health)

	cfg.Definitions.Enemies = filepath.Join(dir, "missing.json")
	_, err = NewGame(cfg, nil, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Speed = 0
	_, err := NewGame(cfg, nil, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunLoggerCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	g, err := NewGame(config.Default(), nil, config.NewLogger(&buf, "info", true))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), g.RunID.String())
}

func TestDrawDoesNotAdvance(t *testing.T) {
	g := newTestGame(t, input.Idle())
	for i := 0; i < 120; i++ {
		g.Update(1.0 / 60)
	}
	before := g.Snapshot()

	var rec render.Recorder
	g.Draw(&rec)

	assert.NotZero(t, rec.Count(render.OpFillCircle))
	assert.Equal(t, before, g.Snapshot())
}

func TestReport(t *testing.T) {
	g := newTestGame(t, input.Idle())
	for i := 0; i < 30; i++ {
		g.Update(1.0 / 60)
	}
	r := g.Report()
	assert.Equal(t, g.RunID.String(), r.RunID)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, 30, r.Ticks)
	assert.Equal(t, "0:00", r.Survival)
	assert.Equal(t, r.Spawns.Total, g.SpawnSystem.Stats().Total)
}
