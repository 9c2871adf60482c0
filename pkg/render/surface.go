package render

import "image/color"

// Surface is the drawing sink entities render into.
// Implementations must not call back into the simulation.
type Surface interface {
	FillCircle(x, y, r float64, clr color.Color)
	StrokeCircle(x, y, r, width float64, clr color.Color)
	Line(x1, y1, x2, y2, width float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	Text(s string, x, y float64, clr color.Color)
}

// Op names a recorded draw call.
type Op string

const (
	OpFillCircle   Op = "fill_circle"
	OpStrokeCircle Op = "stroke_circle"
	OpLine         Op = "line"
	OpFillRect     Op = "fill_rect"
	OpText         Op = "text"
)

// Call is one recorded draw call.
type Call struct {
	Op    Op
	Args  []float64
	Text  string
	Color color.Color
}

// Recorder is a Surface that keeps every call. Used by headless runs and tests.
type Recorder struct {
	Calls []Call
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) FillCircle(x, y, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, Args: []float64{x, y, radius}, Color: clr})
}

func (r *Recorder) StrokeCircle(x, y, radius, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, Args: []float64{x, y, radius, width}, Color: clr})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Args: []float64{x1, y1, x2, y2, width}, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Args: []float64{x, y, w, h}, Color: clr})
}

func (r *Recorder) Text(s string, x, y float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, Args: []float64{x, y}, Text: s, Color: clr})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
