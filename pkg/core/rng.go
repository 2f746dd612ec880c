// Package core provides small, dependency-free utilities shared by the
// amoebot engine and the triangle-rotate algorithm.
package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Both sources of randomness the simulation depends on — per-particle
// compass orientation and the scheduler's epoch permutation — go through one
// of these so a run can be reproduced from a single seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Dir returns a uniformly random compass direction in [0, 6), used to pick a
// particle's local orientation at construction time.
func (r *RNG) Dir() int {
	return r.r.IntN(6)
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Shuffle pseudo-randomly permutes n elements using the provided swap
// function, the way the scheduler reshuffles its activation queue once per
// epoch.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
