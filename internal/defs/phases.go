// internal/defs/phases.go
package defs

// Phase is a time-keyed breakpoint of a difficulty step function.
type Phase struct {
	Time  float64 // seconds since the run started
	Value float64
}

// SpawnRatePhases: 2.0 enemies/s at start, +0.5 every 30s, 11.5 from 570s on.
var SpawnRatePhases = steppedPhases(30, 2.0, 0.5, 20)

// PowerPhases: enemy power multiplier 1.0 at start, +0.2 every 60s, 3.0 from 600s on.
var PowerPhases = steppedPhases(60, 1.0, 0.2, 11)

func steppedPhases(interval, start, increment float64, count int) []Phase {
	phases := make([]Phase, count)
	for i := range phases {
		// Rounded to one decimal so 2.0+0.5*i does not accumulate float error.
		value := start + increment*float64(i)
		phases[i] = Phase{
			Time:  interval * float64(i),
			Value: float64(int(value*10+0.5)) / 10,
		}
	}
	return phases
}

// PhaseValue returns the value of the last phase whose time is not after now.
// Before the first phase it returns the first value.
func PhaseValue(phases []Phase, now float64) float64 {
	if len(phases) == 0 {
		return 0
	}
	value := phases[0].Value
	for _, p := range phases {
		if p.Time > now {
			break
		}
		value = p.Value
	}
	return value
}

// Spawn scheduler tuning.
const (
	SpawnMinDistance   = 100.0
	SpawnMaxDistance   = 300.0
	SpawnMinSeparation = 30.0
	SpawnMaxAttempts   = 50

	BossMinTime        = 60.0
	BossMinLevel       = 5
	BossInterval       = 120.0
	BossMinDistance    = 150.0
	BossDistanceSpread = 50.0
)
