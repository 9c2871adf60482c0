package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PlayfieldConfig is the arena size in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig holds the player's starting stats.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	AttackRange  float64 `yaml:"attack_range"`
	AttackDamage float64 `yaml:"attack_damage"`
}

// DefinitionsConfig points at optional JSON files overriding the built-in stat tables.
type DefinitionsConfig struct {
	Enemies string `yaml:"enemies"`
	Items   string `yaml:"items"`
}

// Config is everything a run can be tuned with.
type Config struct {
	Playfield  PlayfieldConfig `yaml:"playfield"`
	Player     PlayerConfig    `yaml:"player"`
	MaxEnemies int             `yaml:"max_enemies"`
	MaxItems   int             `yaml:"max_items"`
	Seed       int64           `yaml:"seed"`
	// ContactDestroysEnemy makes an enemy that touches the player deal its damage once
	// and die, awarding experience. When false, contact is left to the enemy's attack state.
	ContactDestroysEnemy bool              `yaml:"contact_destroys_enemy"`
	Definitions          DefinitionsConfig `yaml:"definitions"`
	LogLevel             string            `yaml:"log_level"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{Width: ScreenWidth, Height: ScreenHeight},
		Player: PlayerConfig{
			Speed:        150,
			AttackRange:  120,
			AttackDamage: 10,
		},
		MaxEnemies:           100,
		MaxItems:             20,
		ContactDestroysEnemy: true,
		LogLevel:             "info",
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every value is usable by the simulation.
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalidConfig)
	case c.Player.AttackRange <= 0:
		return fmt.Errorf("%w: attack range must be positive", ErrInvalidConfig)
	case c.Player.AttackDamage < 0:
		return fmt.Errorf("%w: attack damage must not be negative", ErrInvalidConfig)
	case c.MaxEnemies < 0 || c.MaxItems < 0:
		return fmt.Errorf("%w: entity caps must not be negative", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
