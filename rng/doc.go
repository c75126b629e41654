// Package rng provides the explicit random sources consumed by the coalescent
// builder and the drift simulator.
//
// What:
//
//   - Source: the minimal capability set a simulation needs: exponential
//     waiting times, unordered pairs of distinct positions, uniform floats,
//     bounded integers and binomial counts.
//   - Rand: the default Source, a PCG generator from golang.org/x/exp/rand.
//   - DeriveSeed / (*Rand).Derive: independent, reproducible substreams for
//     parallel replicates.
//
// Determinism:
//
//   - Same seed ⇒ identical draws on every platform.
//   - Seed 0 is remapped to DefaultSeed so the zero value of a config is still
//     reproducible.
//   - There is no package-level generator; every consumer receives a Source.
//
// Concurrency:
//
//   - A *Rand is NOT goroutine-safe. Give every goroutine its own stream via
//     Derive instead of sharing one generator behind a lock.
package rng
