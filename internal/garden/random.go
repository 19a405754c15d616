package garden

import "math/rand/v2"

// RandomSource draws growth amounts. Tests inject a deterministic source.
type RandomSource interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewRandomSource returns a goroutine-safe source backed by the runtime's seeded generator
func NewRandomSource() RandomSource {
	return globalRand{}
}

// drawInclusive returns a uniform integer in [lo, hi]
func drawInclusive(r RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
