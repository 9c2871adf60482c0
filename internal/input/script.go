package input

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownScript is returned by ByName for a script it does not know.
var ErrUnknownScript = errors.New("unknown input script")

// Script replays a deterministic input sequence, one State per Poll.
type Script struct {
	tick int
	step func(tick int) State
}

// NewScript builds a Script from a function of the tick number.
func NewScript(step func(tick int) State) *Script {
	return &Script{step: step}
}

func (s *Script) Poll() State {
	st := s.step(s.tick)
	s.tick++
	return st
}

// Ticks is the number of states handed out so far.
func (s *Script) Ticks() int { return s.tick }

// Idle never moves and never casts.
func Idle() *Script {
	return NewScript(func(int) State { return State{} })
}

// Circle walks a circle once every period ticks and dashes at the start of each lap.
func Circle(period int) *Script {
	if period <= 0 {
		period = 1
	}
	return NewScript(func(tick int) State {
		a := 2 * math.Pi * float64(tick%period) / float64(period)
		return State{
			MoveX: math.Cos(a),
			MoveY: math.Sin(a),
			Dash:  tick%period == 0,
		}
	})
}

// ByName resolves the scripts offered by the headless runner.
func ByName(name string) (*Script, error) {
	switch name {
	case "idle", "":
		return Idle(), nil
	case "circle":
		return Circle(240), nil
	default:
		return nil, fmt.Errorf("input %q: %w", name, ErrUnknownScript)
	}
}
