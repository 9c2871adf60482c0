// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnknownDefinition is returned when a definition file names a type the game does not know.
var ErrUnknownDefinition = errors.New("unknown definition")

// ErrInvalidDefinition is returned when a definition file carries unusable stats.
var ErrInvalidDefinition = errors.New("invalid definition")

// Library holds the stat tables a run is played with.
type Library struct {
	Enemies map[EnemyType]EnemyDefinition
	Items   map[ItemType]ItemDefinition
}

// NewLibrary returns a library filled with the built-in tables.
func NewLibrary() *Library {
	return &Library{
		Enemies: DefaultEnemies(),
		Items:   DefaultItems(),
	}
}

// Enemy looks up an enemy definition.
func (l *Library) Enemy(t EnemyType) (EnemyDefinition, bool) {
	def, ok := l.Enemies[t]
	return def, ok
}

// Item looks up an item definition.
func (l *Library) Item(t ItemType) (ItemDefinition, bool) {
	def, ok := l.Items[t]
	return def, ok
}

// LoadEnemyDefinitions reads a JSON array of enemy definitions and overrides
// the matching entries of the library. Entries not in the file keep their defaults.
func (l *Library) LoadEnemyDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if _, ok := l.Enemies[def.ID]; !ok {
			return 0, fmt.Errorf("enemy %q: %w", def.ID, ErrUnknownDefinition)
		}
		if err := def.Validate(); err != nil {
			return 0, err
		}
	}
	for _, def := range enemyDefs {
		l.Enemies[def.ID] = def
	}
	return len(enemyDefs), nil
}

// LoadItemDefinitions reads a JSON array of item definitions and overrides
// the matching entries of the library.
func (l *Library) LoadItemDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read item definitions file: %w", err)
	}

	var itemDefs []ItemDefinition
	if err := json.Unmarshal(file, &itemDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal item definitions: %w", err)
	}

	for _, def := range itemDefs {
		if !def.Type.Valid() {
			return 0, fmt.Errorf("item %q: %w", def.Type, ErrUnknownDefinition)
		}
		if def.BaseEffect <= 0 {
			return 0, fmt.Errorf("item %q: base effect must be positive: %w", def.Type, ErrInvalidDefinition)
		}
	}
	for _, def := range itemDefs {
		l.Items[def.Type] = def
	}
	return len(itemDefs), nil
}

// Validate rejects an enemy that could not move, be hit or be killed.
func (d EnemyDefinition) Validate() error {
	switch {
	case d.Radius <= 0:
		return fmt.Errorf("enemy %q: radius must be positive: %w", d.ID, ErrInvalidDefinition)
	case d.Speed <= 0:
		return fmt.Errorf("enemy %q: speed must be positive: %w", d.ID, ErrInvalidDefinition)
	case d.Health <= 0:
		return fmt.Errorf("enemy %q: health must be positive: %w", d.ID, ErrInvalidDefinition)
	case d.Damage < 0 || d.Experience < 0:
		return fmt.Errorf("enemy %q: damage and experience must not be negative: %w", d.ID, ErrInvalidDefinition)
	}
	return nil
}
