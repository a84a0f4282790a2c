// SPDX-License-Identifier: MIT
// Package: symbolic/gen
//
// options.go: functional options. Constructors panic on meaningless input;
// generators never panic.

package gen

import "math/rand"

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand supplies the RNG for stochastic generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG, making stochastic patterns reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
