package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivors-night/internal/defs"
	"survivors-night/internal/event"
	"survivors-night/internal/input"
	"survivors-night/internal/projectile"
)

func TestAutoCastNeedsUnlockAndTarget(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	h.addEnemy(defs.EnemyZombie, 450, 300)

	h.skills.AutoCast()
	assert.Empty(t, h.world.Projectiles, "nothing unlocked at level 1")

	h.progression.GainExperience(100)
	h.skills.AutoCast()
	require.Len(t, h.world.Projectiles, 1)
	assert.Equal(t, projectile.KindMagicArrow, h.world.Projectiles[0].Kind())
	assert.Equal(t, p.Magic.MagicArrow.MaxCooldown, p.Magic.MagicArrow.Cooldown)

	h.skills.AutoCast()
	assert.Len(t, h.world.Projectiles, 1, "cooldown holds the next volley")
}

func TestAutoCastSkipsWithoutEnemies(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	h.progression.GainExperience(250)

	h.skills.AutoCast()

	assert.Empty(t, h.world.Projectiles)
	assert.True(t, p.Magic.MagicArrow.Ready())
	assert.True(t, p.Magic.Fireball.Ready())
}

func TestAutoCastFireballAtLevelThree(t *testing.T) {
	h := newHarness(t)
	h.progression.GainExperience(250)
	h.addEnemy(defs.EnemyZombie, 450, 300)

	h.skills.AutoCast()

	kinds := map[projectile.Kind]int{}
	for _, pr := range h.world.Projectiles {
		kinds[pr.Kind()]++
	}
	assert.Equal(t, 1, kinds[projectile.KindMagicArrow])
	assert.Equal(t, 1, kinds[projectile.KindFireball])
}

func TestArrowVolleySize(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Magic.MagicArrow.Unlocked = true
	p.Magic.ArrowCount = defs.ArrowCount(15)

	assert.True(t, h.skills.CastMagicArrow())
	assert.Len(t, h.world.Projectiles, 4, "arrows fly even with no enemy around")
}

func TestChainLightningWithoutTargetSpendsCooldown(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Magic.ChainLightning.Unlocked = true

	assert.False(t, h.skills.CastChainLightning())
	assert.Empty(t, h.world.Projectiles)
	assert.Equal(t, defs.ChainLightningSkill.MaxCooldown, p.Magic.ChainLightning.Cooldown)
}

func TestManualFireballWithoutTargetSpendsCooldown(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Magic.Fireball.Unlocked = true
	h.addEnemy(defs.EnemyZombie, 400+p.SkillRange(&p.Magic.Fireball)+10, 300)

	h.skills.ManualCast(input.State{Fireball: true})

	assert.Empty(t, h.world.Projectiles)
	assert.False(t, p.Magic.Fireball.Ready())
}

func TestManualCastIgnoresLockedSkills(t *testing.T) {
	h := newHarness(t)
	h.addEnemy(defs.EnemyZombie, 450, 300)

	h.skills.ManualCast(input.State{MagicArrow: true, Fireball: true, ChainLightning: true})

	assert.Empty(t, h.world.Projectiles)
}

func TestChainLightningThroughProjectileSystem(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Magic.ChainLightning.Unlocked = true
	z := h.addEnemy(defs.EnemyZombie, 450, 300)
	z.Health = 5

	require.True(t, h.skills.CastChainLightning())
	require.Len(t, h.world.Projectiles, 1)

	h.projectiles.Update(1.0 / 60)

	assert.True(t, z.Removed)
	assert.Equal(t, 1, p.EnemiesKilled)
	require.Len(t, h.world.Projectiles, 1, "the bolt stays until it fades")

	h.projectiles.Update(0.3)
	assert.Empty(t, h.world.Projectiles, "a finished chain is dropped")
	dealt := h.eventsOf(event.DamageDealt)
	require.Len(t, dealt, 1)
	assert.Equal(t, string(projectile.KindChainLightning), dealt[0].Data.(event.DamageDealtData).Source)
}

func TestFireballBurnsSurvivors(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.Magic.Fireball.Unlocked = true
	boss := h.addEnemy(defs.EnemyBoss, 460, 300)

	require.True(t, h.skills.CastFireball(nil))
	for i := 0; i < 60 && len(h.world.Burns) == 0; i++ {
		h.projectiles.Update(1.0 / 60)
	}

	require.Len(t, h.world.Burns, 1)
	assert.Same(t, boss, h.world.Burns[0].Target)
	assert.Less(t, boss.Health, 100.0)
	assert.True(t, h.effects.ShakeState().Active())
}
