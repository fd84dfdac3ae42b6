package core

import "math/rand/v2"

// Source is the scalar random stream every stochastic stage draws from.
// Implementations must be deterministic: the same seed yields the same
// sequence of NextDouble values.
type Source interface {
	Seed(seed int64)
	NextDouble() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the generator so that it replays the sequence for seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// NextDouble returns a value in [0, 1) and advances the stream.
func (r *RNG) NextDouble() float64 {
	return r.r.Float64()
}

// FloorIndex maps a unit draw onto [0, n) with floor(v*n), guarding against
// the float rounding that could otherwise return n.
func FloorIndex(v float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
