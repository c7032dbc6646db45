// SPDX-License-Identifier: MIT
// Package layer_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded layers, scripted sources).
//   • Keep every random draw reproducible so failures replay exactly.

package layer_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/perceptron/layer"
)

// Fixed seeds shared across tests.
const (
	seedA int64 = 1337
	seedB int64 = 4242
)

// MustLayer ALLOCATES a seeded n×k layer or fails the test (fatal on error).
func MustLayer(t testing.TB, n, k int, seed int64) *layer.Layer {
	t.Helper()
	l, err := layer.New(n, k, layer.WithSeed(seed))
	if err != nil {
		t.Fatalf("New(%d,%d): %v", n, k, err)
	}

	return l
}

// MustFromWeights BUILDS a layer from explicit rows or fails the test.
func MustFromWeights(t testing.TB, rows [][]int8) *layer.Layer {
	t.Helper()
	l, err := layer.FromWeights(rows)
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	return l
}

// newRand returns a fresh deterministic source.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// scripted is a Rand that replays fixed Intn results in order and counts calls.
// Values are raw Intn results in [0,256); weight == value-128.
type scripted struct {
	vals  []int
	calls int
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.calls%len(s.vals)] % n
	s.calls++

	return v
}

// requireInRange asserts every weight lies in [-128, 127].
func requireInRange(t *testing.T, l *layer.Layer) {
	t.Helper()
	for i, row := range l.Weights() {
		for j, w := range row {
			if int(w) < -128 || int(w) > 127 {
				t.Fatalf("weight (%d,%d)=%d outside int8 range", i, j, w)
			}
		}
	}
}
