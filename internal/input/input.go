// Package input turns a device or a script into per-frame player intents.
package input

import "math"

// State is what the player wants to do this frame.
// Skill flags are edge-triggered: true only on the frame the key went down.
type State struct {
	MoveX, MoveY   float64
	Dash           bool
	MagicArrow     bool
	Fireball       bool
	ChainLightning bool
}

// Movement returns the move vector scaled down to unit length when longer.
func (s State) Movement() (float64, float64) {
	l := math.Hypot(s.MoveX, s.MoveY)
	switch {
	case math.IsNaN(l) || math.IsInf(l, 0):
		return 0, 0
	case l <= 1:
		return s.MoveX, s.MoveY
	}
	return s.MoveX / l, s.MoveY / l
}

// Source yields one State per simulation tick.
type Source interface {
	Poll() State
}
