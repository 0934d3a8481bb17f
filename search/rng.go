package search

import "math/rand"

// RNG is the randomness source for MonteCarlo branch sampling (§4.7). It is
// injected through an interface, per the Design Notes, so expansion can be
// made deterministic for §8 property 7 (determinism modulo random).
type RNG interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

// mathRandRNG adapts math/rand to RNG. It is not safe for concurrent use by
// multiple goroutines, matching the Engine's single-threaded contract (§5).
type mathRandRNG struct {
	r *rand.Rand
}

// NewRNG returns the default release-build RNG: a seeded math/rand source
// private to this Engine (no process-wide shared generator, per §5).
func NewRNG(seed int64) RNG {
	return &mathRandRNG{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandRNG) Float64() float64 {
	return m.r.Float64()
}
