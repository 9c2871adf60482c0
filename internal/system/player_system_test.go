package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/input"
)

func TestPlayerMovesAndStaysInBounds(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player

	h.player.Update(0.5, input.State{MoveX: 1})
	assert.InDelta(t, 475, p.X, 1e-9)
	assert.Equal(t, 150.0, p.VX)

	h.player.Update(10, input.State{MoveX: 1, MoveY: 1})
	assert.Equal(t, h.world.Bounds.Width-p.Radius, p.X)
	assert.Equal(t, h.world.Bounds.Height-p.Radius, p.Y)

	h.player.Update(0.1, input.State{})
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
}

func TestDashDoublesSpeedBriefly(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player

	h.player.Update(0.1, input.State{Dash: true})
	assert.True(t, p.Dash.Active)
	assert.InDelta(t, config.PlayerDashCooldown-0.1, p.Dash.Cooldown, 1e-9)

	h.player.Update(0.05, input.State{MoveX: 1})
	assert.InDelta(t, 400+150*config.PlayerDashMultiplier*0.05, p.X, 1e-9)

	h.player.Update(0.1, input.State{Dash: true})
	assert.False(t, p.Dash.Active, "dash ends after its duration")

	h.player.Update(0.1, input.State{Dash: true})
	assert.False(t, p.Dash.Active, "dash is on cooldown")
}

func TestHealthRegenCapsAtMax(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	require.NoError(t, p.ApplyItemEffect(defs.ItemHealthRegen, 5, 30))
	p.Health = 50

	h.player.Update(1, input.State{})
	assert.InDelta(t, 55, p.Health, 1e-9)

	p.Health = 99
	h.player.Update(1, input.State{})
	assert.Equal(t, 100.0, p.Health)
}

func TestPlayerClocksAndCooldowns(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Magic.Fireball.Cooldown = 1.5

	h.player.Update(0.5, input.State{})

	assert.Equal(t, 0.5, p.SurvivalTime)
	assert.InDelta(t, 1.0, p.Magic.Fireball.Cooldown, 1e-9)
}

func TestEffectsExpireDuringPlay(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	require.NoError(t, p.ApplyItemEffect(defs.ItemAttackRange, 0.5, 1))
	assert.InDelta(t, 180, p.CurrentRange(), 1e-9)

	h.player.Update(0.5, input.State{})
	assert.InDelta(t, 180, p.CurrentRange(), 1e-9)
	h.player.Update(0.5, input.State{})
	assert.InDelta(t, 120, p.CurrentRange(), 1e-9)
}

func TestDeadPlayerIsFrozen(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Health = 0

	h.player.Update(1, input.State{MoveX: 1})

	assert.Equal(t, 400.0, p.X)
	assert.Zero(t, p.SurvivalTime)
}
