package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800.0, cfg.Playfield.Width)
	assert.Equal(t, 600.0, cfg.Playfield.Height)
	assert.Equal(t, 100, cfg.MaxEnemies)
	assert.Equal(t, 20, cfg.MaxItems)
	assert.True(t, cfg.ContactDestroysEnemy)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("playfield:\n  width: 1024\nplayer:\n  attack_damage: 25\nseed: 99\ncontact_destroys_enemy: false\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Playfield.Width)
	assert.Equal(t, 600.0, cfg.Playfield.Height)
	assert.Equal(t, 25.0, cfg.Player.AttackDamage)
	assert.Equal(t, 150.0, cfg.Player.Speed)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.False(t, cfg.ContactDestroysEnemy)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_enemies: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", true)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}
