package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivors-night/internal/defs"
)

type point struct{ x, y float64 }

func (p point) Pos() (float64, float64) { return p.x, p.y }

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(0, 0, 5, 10, 0, 5), "touching edges overlap")
	assert.False(t, CirclesOverlap(0, 0, 5, 10.01, 0, 5))
}

func TestBounds(t *testing.T) {
	b := Bounds{Width: 800, Height: 600}
	x, y := b.ClampCircle(-20, 700, 16)
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 584.0, y)

	assert.False(t, b.OutOfBounds(-50, 300, 50))
	assert.True(t, b.OutOfBounds(-50.5, 300, 50))
	assert.True(t, b.Contains(800, 600))
	assert.False(t, b.Contains(801, 0))
}

func TestTurnTowardCapsRotation(t *testing.T) {
	got := TurnToward(0, math.Pi/2, 0.1)
	assert.InDelta(t, 0.1, got, 1e-9)

	// Shortest arc crosses the ±π seam.
	got = TurnToward(math.Pi-0.05, -math.Pi+0.05, 1)
	assert.InDelta(t, math.Pi+0.05, got, 1e-9)

	got = TurnToward(0, 0.05, 0.1)
	assert.InDelta(t, 0.05, got, 1e-9)
}

func TestNearest(t *testing.T) {
	pts := []point{{100, 0}, {30, 0}, {50, 0}}
	p, d, ok := Nearest(pts, 0, 0, 60, nil)
	require.True(t, ok)
	assert.Equal(t, point{30, 0}, p)
	assert.Equal(t, 30.0, d)

	_, _, ok = Nearest(pts, 0, 0, 20, nil)
	assert.False(t, ok)

	p, _, ok = Nearest(pts, 0, 0, 60, func(p point) bool { return p.x != 30 })
	require.True(t, ok)
	assert.Equal(t, point{50, 0}, p)
}

func TestWithinSorted(t *testing.T) {
	pts := []point{{100, 0}, {30, 0}, {50, 0}, {0, 40}}
	got := WithinSorted(pts, 0, 0, 60, nil)
	assert.Equal(t, []point{{30, 0}, {0, 40}, {50, 0}}, got)
}

func TestChooseWeightedIsDeterministicPerSeed(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.ChooseWeighted(defs.EnemySpawnWeights), b.ChooseWeighted(defs.EnemySpawnWeights))
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	rng := NewPRNGService(42)
	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[rng.ChooseWeighted(defs.EnemySpawnWeights)]++
	}
	assert.InDelta(t, 0.60, float64(counts["zombie"])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(counts["ghost"])/draws, 0.02)
	assert.InDelta(t, 0.12, float64(counts["vampire"])/draws, 0.02)
	assert.InDelta(t, 0.03, float64(counts["boss"])/draws, 0.01)
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	rng := NewPRNGService(1)
	assert.Equal(t, "", rng.ChooseWeighted(nil))
	assert.Equal(t, "a", rng.ChooseWeighted([]defs.WeightedEntry{{ID: "a"}, {ID: "b"}}))
}
