// internal/component/stats.go
package component

import (
	"errors"
	"fmt"
	"math"

	"survivors-night/internal/defs"
)

// ErrInvalidEffect is returned for item effects with an unknown stat or a non-finite value.
var ErrInvalidEffect = errors.New("invalid item effect")

// Stats is the derived multiplier bag. It is rebuilt from the effect ledger and never edited in place.
type Stats struct {
	AttackDamage  float64 `json:"attack_damage" msgpack:"attack_damage"`
	AttackSpeed   float64 `json:"attack_speed" msgpack:"attack_speed"`
	AttackRange   float64 `json:"attack_range" msgpack:"attack_range"`
	MovementSpeed float64 `json:"movement_speed" msgpack:"movement_speed"`
	MaxHealth     float64 `json:"max_health" msgpack:"max_health"`
	HealthRegen   float64 `json:"health_regen" msgpack:"health_regen"` // additive, per second
}

// BaselineStats is the bag with no effects active.
func BaselineStats() Stats {
	return Stats{
		AttackDamage:  1,
		AttackSpeed:   1,
		AttackRange:   1,
		MovementSpeed: 1,
		MaxHealth:     1,
		HealthRegen:   0,
	}
}

// Get returns the value for one item type.
func (s Stats) Get(t defs.ItemType) float64 {
	switch t {
	case defs.ItemAttackDamage:
		return s.AttackDamage
	case defs.ItemAttackSpeed:
		return s.AttackSpeed
	case defs.ItemAttackRange:
		return s.AttackRange
	case defs.ItemMovementSpeed:
		return s.MovementSpeed
	case defs.ItemMaxHealth:
		return s.MaxHealth
	case defs.ItemHealthRegen:
		return s.HealthRegen
	}
	return 0
}

// TimedEffect is one picked-up boost. It lapses Duration seconds after StartTime.
type TimedEffect struct {
	Value     float64
	Duration  float64
	StartTime float64
}

// Expired reports whether the effect has lapsed at now.
func (e TimedEffect) Expired(now float64) bool {
	return now-e.StartTime >= e.Duration
}

// EffectLedger is the source of truth for active item effects, per stat.
type EffectLedger struct {
	effects map[defs.ItemType][]TimedEffect
}

// Add validates and records an effect.
func (l *EffectLedger) Add(t defs.ItemType, e TimedEffect) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown stat %q", ErrInvalidEffect, t)
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return fmt.Errorf("%w: %s value %v", ErrInvalidEffect, t, e.Value)
	}
	if math.IsNaN(e.Duration) || math.IsInf(e.Duration, 0) || e.Duration < 0 {
		return fmt.Errorf("%w: %s duration %v", ErrInvalidEffect, t, e.Duration)
	}
	if l.effects == nil {
		l.effects = make(map[defs.ItemType][]TimedEffect)
	}
	l.effects[t] = append(l.effects[t], e)
	return nil
}

// Active returns the unexpired effects for one stat at now.
func (l *EffectLedger) Active(t defs.ItemType, now float64) []TimedEffect {
	var out []TimedEffect
	for _, e := range l.effects[t] {
		if !e.Expired(now) {
			out = append(out, e)
		}
	}
	return out
}

// Len counts recorded effects, expired or not.
func (l *EffectLedger) Len() int {
	n := 0
	for _, list := range l.effects {
		n += len(list)
	}
	return n
}

// Recompute prunes expired effects and rebuilds the stat bag from what remains.
func (l *EffectLedger) Recompute(now float64) Stats {
	stats := BaselineStats()
	for t, list := range l.effects {
		kept := list[:0]
		sum := 0.0
		for _, e := range list {
			if e.Expired(now) {
				continue
			}
			kept = append(kept, e)
			sum += e.Value
		}
		if len(kept) == 0 {
			delete(l.effects, t)
		} else {
			l.effects[t] = kept
		}

		switch t {
		case defs.ItemAttackDamage:
			stats.AttackDamage += sum
		case defs.ItemAttackSpeed:
			stats.AttackSpeed += sum
		case defs.ItemAttackRange:
			stats.AttackRange += sum
		case defs.ItemMovementSpeed:
			stats.MovementSpeed += sum
		case defs.ItemMaxHealth:
			stats.MaxHealth += sum
		case defs.ItemHealthRegen:
			stats.HealthRegen += sum
		}
	}
	return stats
}
