// Package rng wraps math/rand behind a seedable, re-creatable source,
// directly modeled on the teacher repository's ntru/rng.go RNG type. The
// WIFA constructors retry internally on a bad draw (spec §4.3 "Retry
// policy"); every retry needs fresh randomness without the caller losing
// track of which seed produced a given run, so callers hold an *RNG and pass
// its underlying *rand.Rand down into the automaton constructors.
package rng

import (
	"math/big"
	"math/rand"
)

// RNG wraps a deterministic rand.Rand, letting callers carry a seed around
// (for logging or reproducing a run) alongside the generator itself.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a new RNG seeded deterministically from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed this RNG was created with.
func (g *RNG) Seed() int64 { return g.seed }

// Rand returns the underlying *rand.Rand, for passing directly to the
// automaton/vecmat constructors that take one.
func (g *RNG) Rand() *rand.Rand { return g.r }

// Intn returns a random int in [0,n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// RandBigInt returns a random big.Int uniformly in [0,mod).
func (g *RNG) RandBigInt(mod *big.Int) *big.Int {
	res := new(big.Int)
	res.Rand(g.r, mod)
	return res
}
