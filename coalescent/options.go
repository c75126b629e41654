// SPDX-License-Identifier: MIT
// Package: coalescent
//
// options.go — functional options for Builder.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil source); Build
//     itself only returns errors.
//   • Determinism is explicit: a Builder without WithSource/WithSeed uses
//     rng.DefaultSeed, never a time-based seed.

package coalescent

import "github.com/katalvlaran/coalescent/rng"

// Option customizes a Builder.
type Option func(*builderConfig)

// builderConfig is resolved once by NewBuilder; later options override
// earlier ones.
type builderConfig struct {
	src rng.Source
}

// WithSource attaches an explicit random source. Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("coalescent: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithSeed attaches a fresh rng.Rand seeded with seed (0 ⇒ rng.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.src = rng.New(seed)
	}
}

// Builder draws successive trees from one random source. Like the source it
// wraps, a Builder is not safe for concurrent use; give each goroutine its
// own Builder over a derived stream.
type Builder struct {
	src rng.Source
}

// NewBuilder resolves opts in order and returns a ready Builder.
func NewBuilder(opts ...Option) *Builder {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rng.New(rng.DefaultSeed)
	}
	return &Builder{src: cfg.src}
}

// Source returns the random source the Builder consumes.
func (b *Builder) Source() rng.Source { return b.src }

// Build draws the next tree of n samples. See Build.
func (b *Builder) Build(n int) (*Tree, error) {
	return Build(n, b.src)
}
