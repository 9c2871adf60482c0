package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"survivors-night/internal/component"
	"survivors-night/internal/defs"
	"survivors-night/internal/event"
)

func TestContactDestroysEnemy(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	z := h.addEnemy(defs.EnemyZombie, 410, 300)
	far := h.addEnemy(defs.EnemyZombie, 100, 300)

	h.collisions.Update()

	assert.Equal(t, 85.0, p.Health)
	assert.True(t, z.Removed)
	assert.False(t, far.Removed)
	assert.Equal(t, 1, p.EnemiesKilled)
	assert.Equal(t, 20, p.Experience)
	assert.Equal(t, 1, h.count(event.PlayerDamaged))
	assert.True(t, h.effects.ShakeState().Active())
}

func TestContactLeftToAIWhenDisabled(t *testing.T) {
	h := newHarness(t)
	collisions := NewCollisionSystem(h.world, h.combat, h.items, h.dispatcher, h.effects, false)
	z := h.addEnemy(defs.EnemyZombie, 410, 300)

	collisions.Update()

	assert.False(t, z.Removed)
	assert.Equal(t, 100.0, h.world.Player.Health)
}

func TestTouchingItemIsPickedUp(t *testing.T) {
	h := newHarness(t)
	near := &component.Item{ID: h.world.NewEntity(), X: 405, Y: 300, Radius: defs.ItemRadius, Type: defs.ItemMovementSpeed, Value: 0.1, Duration: 10}
	far := &component.Item{ID: h.world.NewEntity(), X: 500, Y: 300, Radius: defs.ItemRadius, Type: defs.ItemMovementSpeed, Value: 0.1, Duration: 10}
	h.world.Items = append(h.world.Items, near, far)

	h.collisions.Update()

	assert.True(t, near.Removed)
	assert.False(t, far.Removed)
	assert.InDelta(t, 1.1, h.world.Player.Stats.MovementSpeed, 1e-9)
}
