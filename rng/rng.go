// SPDX-License-Identifier: MIT
// Package: coalescent/rng
//
// rng.go — PCG-backed Source and stream derivation.
//
// Contract:
//   • Exp and Pair are hot-path primitives; invalid arguments are programmer
//     errors and panic with an assertion failure instead of returning errors.
//   • Derive never advances the parent stream, so the set of worker streams
//     depends only on (seed, stream id).

package rng

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is used whenever a caller passes seed==0.
const DefaultSeed uint64 = 1

// Source is the randomness a coalescent simulation consumes.
type Source interface {
	// Exp draws an exponential deviate with the given rate (mean 1/rate).
	Exp(rate float64) float64

	// Pair draws two distinct positions uniformly from [0, i) without
	// replacement. The order of the returned values is the draw order.
	Pair(i int) (j, k int)

	// Float64 draws a uniform deviate in [0, 1).
	Float64() float64

	// Intn draws a uniform integer in [0, n).
	Intn(n int) int

	// Binomial draws the number of successes in n Bernoulli(p) trials.
	Binomial(n int, p float64) int
}

// Rand is the default Source: a seeded PCG generator.
type Rand struct {
	seed uint64
	src  rand.Source
	r    *rand.Rand
}

var _ Source = (*Rand)(nil)

// New returns a deterministic Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	src := rand.NewSource(seed)
	return &Rand{seed: seed, src: src, r: rand.New(src)}
}

// Seed reports the effective seed of r (after the zero-seed policy).
func (r *Rand) Seed() uint64 { return r.seed }

// Exp draws an exponential deviate with mean 1/rate.
// Panics if rate is not a positive finite number.
//
// Complexity: O(1).
func (r *Rand) Exp(rate float64) float64 {
	if !(rate > 0) || math.IsInf(rate, 1) {
		panic(errors.AssertionFailedf("rng: Exp rate must be positive and finite, got %v", rate))
	}
	return r.r.ExpFloat64() / rate
}

// Pair draws j, then redraws k until k != j. Every unordered pair of
// positions in [0, i) is equally likely. Panics if i < 2.
//
// Complexity: expected O(1) draws (at most i/(i-1) redraws on average).
func (r *Rand) Pair(i int) (j, k int) {
	if i < 2 {
		panic(errors.AssertionFailedf("rng: Pair needs at least 2 positions, got %d", i))
	}
	j = r.r.Intn(i)
	k = r.r.Intn(i)
	for k == j {
		k = r.r.Intn(i)
	}
	return j, k
}

// Float64 draws a uniform deviate in [0, 1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

// Intn draws a uniform integer in [0, n). Panics if n <= 0.
func (r *Rand) Intn(n int) int { return r.r.Intn(n) }

// Binomial draws the number of successes in n Bernoulli(p) trials with
// gonum's distuv sampler on r's PCG stream.
// p outside [0, 1] is clamped; n <= 0 yields 0.
func (r *Rand) Binomial(n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	b := distuv.Binomial{N: float64(n), P: p, Src: r.src}
	return int(math.Round(b.Rand()))
}

// Derive returns an independent deterministic stream identified by stream.
// r itself is not advanced: Derive(s) returns the same stream every time.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker generators.
//
// Complexity: O(1).
func (r *Rand) Derive(stream uint64) *Rand {
	return New(DeriveSeed(r.seed, stream))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer. The result is never 0, so derived streams
// never collapse onto DefaultSeed.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}
	return x
}
