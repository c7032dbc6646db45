// SPDX-License-Identifier: MIT

// Package layer: functional configuration for New.
// This file defines:
//   - documented defaults and floors (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Options only affect construction; mutations take their Rand explicitly.
package layer

// ---------- Defaults (single source of truth) ----------

const (
	// MinNeurons is the smallest legal neuron (row) count.
	MinNeurons = 1

	// MinInputs is the smallest legal non-bias input count. It holds at
	// construction and after every DeleteWeights.
	MinInputs = 2

	// BiasInput is the constant value fed into column 0 of every row.
	BiasInput int8 = 1

	// DefaultSeed seeds the weight stream when no Rand or seed is supplied.
	// The value is arbitrary but stable to keep reproducible defaults.
	DefaultSeed int64 = 1
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rng  Rand  // explicit source; wins over seed when non-nil
	seed int64 // 0 ⇒ DefaultSeed
}

// WithRand draws the initial weights from r. A nil r falls back to the seed policy.
//
// Complexity: O(1).
func WithRand(r Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed draws the initial weights from a fresh math/rand stream seeded with seed.
// seed==0 selects DefaultSeed. Clears any source set earlier by WithRand.
//
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// gatherOptions applies opts over the defaults and resolves the random source.
func gatherOptions(opts ...Option) options {
	o := options{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}

	return o
}
