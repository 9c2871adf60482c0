// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// TurnToward rotates from toward target by at most maxStep radians along the shortest arc.
func TurnToward(from, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - from)
	if math.Abs(diff) > maxStep {
		diff = math.Copysign(maxStep, diff)
	}
	return from + diff
}

// Distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap reports whether two circles touch. Touching edges count.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) <= r1+r2
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bounds is the playfield rectangle with its origin at (0,0).
type Bounds struct {
	Width  float64
	Height float64
}

// ClampCircle keeps a circle of radius r fully inside the bounds.
func (b Bounds) ClampCircle(x, y, r float64) (float64, float64) {
	return Clamp(x, r, b.Width-r), Clamp(y, r, b.Height-r)
}

// Contains reports whether a point is inside the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// OutOfBounds reports whether a point has left the bounds by more than margin.
func (b Bounds) OutOfBounds(x, y, margin float64) bool {
	return x < -margin || x > b.Width+margin || y < -margin || y > b.Height+margin
}

// IsFinite is false for NaN and ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Locatable is anything with a position on the playfield.
type Locatable interface {
	Pos() (float64, float64)
}

// Nearest returns the closest item to (x,y) within maxDist that accept admits.
// A nil accept admits everything. Ties keep the earlier item.
func Nearest[T Locatable](items []T, x, y, maxDist float64, accept func(T) bool) (T, float64, bool) {
	var (
		best     T
		bestDist = math.Inf(1)
		found    bool
	)
	for _, it := range items {
		if accept != nil && !accept(it) {
			continue
		}
		ix, iy := it.Pos()
		d := Distance(x, y, ix, iy)
		if d <= maxDist && d < bestDist {
			best, bestDist, found = it, d, true
		}
	}
	return best, bestDist, found
}

// WithinSorted returns the items within maxDist of (x,y) that accept admits, nearest first.
func WithinSorted[T Locatable](items []T, x, y, maxDist float64, accept func(T) bool) []T {
	type ranked struct {
		item T
		dist float64
	}
	var hits []ranked
	for _, it := range items {
		if accept != nil && !accept(it) {
			continue
		}
		ix, iy := it.Pos()
		if d := Distance(x, y, ix, iy); d <= maxDist {
			hits = append(hits, ranked{it, d})
		}
	}
	// Insertion sort keeps equal distances in input order.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].dist < hits[j-1].dist; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
