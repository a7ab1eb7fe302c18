package sentience

import "math/rand"

// Source is the randomness the engine draws from. *rand.Rand satisfies it;
// tests substitute scripted sources to pin probability gates and picks.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// chance draws once and reports whether the draw fell under p.
func chance(rng Source, p float64) bool {
	return rng.Float64() < p
}
