// Package rng provides the CHIP-8 random source expected by
// internal/chip8.RandomSource. No repository in the retrieval pack reaches
// for a third-party PRNG for this — math/rand, seeded once per process, is
// the pack's own convention for CHIP-8's CXNN instruction.
package rng

import "math/rand"

// Source wraps a per-process seeded math/rand generator.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with seed. Callers typically derive seed
// from the wall-clock time at process start (see cmd/yac8e).
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NextByte returns a uniformly-distributed byte in [0, 256).
func (s *Source) NextByte() byte {
	return byte(s.r.Intn(256))
}
