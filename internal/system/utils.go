// internal/system/utils.go
package system

import (
	"log/slog"
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/types"
)

// Damage sources reported in DamageDealt events besides the projectile kinds.
const (
	SourceAutoAttack = "auto_attack"
	SourceBurn       = "burn"
	SourceContact    = "contact"
	SourceEnemy      = "enemy"
)

// SafeUpdate runs fn and turns a panic into a logged fault.
// It reports false when fn panicked; the caller then drops the entity.
func SafeUpdate(logger *slog.Logger, kind string, id types.EntityID, fn func()) bool {
	return guard(logger, "entity update failed, removing it", kind, id, fn)
}

// SafeRender is SafeUpdate for drawing.
func SafeRender(logger *slog.Logger, kind string, id types.EntityID, fn func()) bool {
	return guard(logger, "entity render failed, removing it", kind, id, fn)
}

func guard(logger *slog.Logger, msg, kind string, id types.EntityID, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Error(msg, "kind", kind, "id", id, "panic", r)
			}
			ok = false
		}
	}()
	fn()
	return true
}

// angleTo is the heading from (x1, y1) to (x2, y2).
func angleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

func liveEnemy(e *component.Enemy) bool { return e.Alive() }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
