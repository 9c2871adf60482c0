// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"survivors-night/internal/defs"
)

// PRNGService wraps a seeded generator so a whole run can be replayed from one seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Angle returns a heading in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// ChooseWeighted performs a weighted draw over entries and returns the chosen ID.
// It sums the weights, picks a point in that range and walks the table to it.
func (s *PRNGService) ChooseWeighted(entries []defs.WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].ID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.ID
		}
		upto += entry.Weight
	}

	// Unreachable while weights are non-negative.
	return entries[len(entries)-1].ID
}
