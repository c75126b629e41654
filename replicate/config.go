// SPDX-License-Identifier: MIT
// Package: coalescent/replicate
//
// config.go — replicate runner configuration and deterministic defaults.
//
// Deterministic defaults:
//   • Samples    = 10
//   • Replicates = 1000
//   • Workers    = 1      (results depend on (Seed, Workers), not on scheduling)
//   • Seed       = 0      (⇒ rng.DefaultSeed)

package replicate

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

const (
	defaultSamples    = 10
	defaultReplicates = 1000
	defaultWorkers    = 1
)

// Config controls one batch of independent coalescent replicates.
type Config struct {
	// Samples is the sample size n of every tree (n >= 2).
	Samples int `json:"samples" yaml:"samples"`

	// Replicates is the number of independent trees to draw (>= 1).
	Replicates int `json:"replicates" yaml:"replicates"`

	// Workers is the number of goroutines. Each worker owns a stream derived
	// from Seed; 0 means runtime.GOMAXPROCS(0).
	Workers int `json:"workers" yaml:"workers"`

	// Seed is the base seed; 0 selects rng.DefaultSeed.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Samples:    defaultSamples,
		Replicates: defaultReplicates,
		Workers:    defaultWorkers,
	}
}

// Validate rejects sizes the runner cannot honour.
func (c Config) Validate() error {
	if c.Samples < 2 {
		return errors.Wrapf(ErrInvalidConfig, "samples=%d, need at least 2", c.Samples)
	}
	if c.Replicates < 1 {
		return errors.Wrapf(ErrInvalidConfig, "replicates=%d, need at least 1", c.Replicates)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers=%d must not be negative", c.Workers)
	}
	return nil
}

// workers resolves the effective worker count: never more than Replicates.
func (c Config) workers() int {
	w := c.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	return min(w, c.Replicates)
}
