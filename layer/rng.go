// Package layer - random weight source.
//
// All weight draws go through a caller-supplied Rand. There is no package-level
// generator and no time-based seeding, so the same seed always yields the same
// matrix and the same mutation results.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package layer

import "math/rand"

// Rand is the minimal random source needed to draw weights.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n > 0.
	Intn(n int) int
}

// weightSpan is the number of distinct int8 values.
const weightSpan = 256

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// orDefault substitutes the default deterministic stream for a nil source.
func orDefault(r Rand) Rand {
	if r == nil {
		return rngFromSeed(0)
	}
	return r
}

// drawWeight returns one uniform weight in [-128, 127].
// Complexity: O(1).
func drawWeight(r Rand) int8 {
	return int8(r.Intn(weightSpan) - 128)
}

// fillWeights overwrites dst with independent draws, in index order.
//
// Complexity: O(len(dst)).
func fillWeights(dst []int8, r Rand) {
	var i int
	for i = range dst {
		dst[i] = drawWeight(r)
	}
}
