package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackDirections(t *testing.T) {
	cases := map[int]int{
		1: 1, 2: 2, 3: 3, 4: 3, 5: 4, 6: 4, 7: 5, 8: 5, 9: 6,
		11: 6, 12: 7, 14: 7, 15: 8, 17: 8, 18: 9, 40: 9,
	}
	for level, want := range cases {
		assert.Equal(t, want, AttackDirections(level), "level %d", level)
	}
}

func TestArrowCountAndChains(t *testing.T) {
	assert.Equal(t, 1, ArrowCount(1))
	assert.Equal(t, 1, ArrowCount(4))
	assert.Equal(t, 2, ArrowCount(5))
	assert.Equal(t, 3, ArrowCount(10))
	assert.Equal(t, 4, ArrowCount(15))
	assert.Equal(t, 5, ArrowCount(25))

	assert.Equal(t, 3, MaxChains(1))
	assert.Equal(t, 7, MaxChains(5))
}

func TestSkillDamageBonus(t *testing.T) {
	assert.InDelta(t, 1.0, SkillDamageBonus(1), 1e-9)
	assert.InDelta(t, 1.2, SkillDamageBonus(5), 1e-9)
}

func TestExperienceForLevel(t *testing.T) {
	assert.Equal(t, 0, ExperienceForLevel(0))
	assert.Equal(t, 0, ExperienceForLevel(1))
	assert.Equal(t, 100, ExperienceForLevel(2))
	assert.Equal(t, 150, ExperienceForLevel(3))
	assert.Equal(t, 225, ExperienceForLevel(4))
	assert.Equal(t, 337, ExperienceForLevel(5))
}

func TestSpawnRatePhases(t *testing.T) {
	assert.Equal(t, 2.0, PhaseValue(SpawnRatePhases, 0))
	assert.Equal(t, 2.0, PhaseValue(SpawnRatePhases, 29.9))
	assert.Equal(t, 2.5, PhaseValue(SpawnRatePhases, 30))
	assert.Equal(t, 11.0, PhaseValue(SpawnRatePhases, 569))
	assert.Equal(t, 11.5, PhaseValue(SpawnRatePhases, 570))
	assert.Equal(t, 11.5, PhaseValue(SpawnRatePhases, 599))
	assert.Equal(t, 11.5, PhaseValue(SpawnRatePhases, 5000))
}

func TestPowerPhases(t *testing.T) {
	assert.Equal(t, 1.0, PhaseValue(PowerPhases, 0))
	assert.Equal(t, 1.0, PhaseValue(PowerPhases, 59))
	assert.Equal(t, 1.2, PhaseValue(PowerPhases, 60))
	assert.Equal(t, 2.8, PhaseValue(PowerPhases, 599))
	assert.Equal(t, 3.0, PhaseValue(PowerPhases, 600))
}

func TestPhasesAreMonotonic(t *testing.T) {
	for _, table := range [][]Phase{SpawnRatePhases, PowerPhases} {
		prev := PhaseValue(table, 0)
		for now := 0.0; now < 700; now += 0.5 {
			v := PhaseValue(table, now)
			assert.GreaterOrEqual(t, v, prev, "t=%v", now)
			prev = v
		}
	}
}

func TestRollRarity(t *testing.T) {
	assert.Equal(t, RarityEpic, RollRarity(0.01))
	assert.Equal(t, RarityRare, RollRarity(0.03))
	assert.Equal(t, RarityUncommon, RollRarity(0.1))
	assert.Equal(t, RarityCommon, RollRarity(0.3))
	assert.Equal(t, RarityCommon, RollRarity(0.9))

	assert.Equal(t, 4.0, RarityMultiplier(RarityEpic))
	assert.Equal(t, 1.0, RarityMultiplier(Rarity("mythic")))
}

func TestDropChance(t *testing.T) {
	assert.InDelta(t, 0.302, DropChance(20), 1e-9)
	assert.InDelta(t, 0.31, DropChance(100), 1e-9)
}

func TestLibraryLoadEnemyDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"zombie","name":"Ghoul","radius":12,"speed":90,"health":50,"damage":5,"experience":30}]`), 0o644))

	lib := NewLibrary()
	n, err := lib.LoadEnemyDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	zombie, ok := lib.Enemy(EnemyZombie)
	require.True(t, ok)
	assert.Equal(t, "Ghoul", zombie.Name)
	assert.Equal(t, 50.0, zombie.Health)

	ghost, _ := lib.Enemy(EnemyGhost)
	assert.Equal(t, 20.0, ghost.Health)
}

func TestLibraryRejectsUnknownTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"luck","base_effect":1}]`), 0o644))

	lib := NewLibrary()
	_, err := lib.LoadItemDefinitions(path)
	assert.ErrorIs(t, err, ErrUnknownDefinition)

	_, err = lib.LoadEnemyDefinitions(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLibraryRejectsUnusableStats(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary()

	cases := map[string]string{
		"zero health":    `[{"id":"ghost","radius":10,"speed":80,"health":0,"damage":10,"experience":15}]`,
		"negative speed": `[{"id":"ghost","radius":10,"speed":-5,"health":20,"damage":10,"experience":15}]`,
		"zero radius":    `[{"id":"ghost","radius":0,"speed":80,"health":20,"damage":10,"experience":15}]`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, "enemies.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := lib.LoadEnemyDefinitions(path)
		assert.ErrorIs(t, err, ErrInvalidDefinition, name)
	}
	ghost, _ := lib.Enemy(EnemyGhost)
	assert.Equal(t, 20.0, ghost.Health, "a rejected file changes nothing")

	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"attackSpeed","base_effect":0}]`), 0o644))
	_, err := lib.LoadItemDefinitions(path)
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	for _, def := range DefaultEnemies() {
		assert.NoError(t, def.Validate(), def.ID)
	}
}
