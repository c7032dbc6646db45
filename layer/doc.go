// Package layer models one layer of binary-threshold (perceptron-style)
// neurons as a growable int8 weight matrix.
//
// 🚀 What is a Layer?
//
//	A Layer holds Neurons() rows of Inputs()+1 signed 8-bit weights.
//	Column 0 of every row is the bias weight, fed with a constant 1.
//	Forward multiplies weights by inputs (int8, wrapping), sums each
//	row and thresholds: 1 if the sum is > 0, else 0.
//
// ✨ Structural mutations (no training):
//   - InsertNeuron(i, rng) / AddNeuron(rng) — grow the neuron count
//   - AddWeights(rng)                       — grow every neuron by one input
//   - DeleteWeights(j)                      — drop input column j (j ≥ 1)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/perceptron/layer"
//
//	l, err := layer.New(3, 4, layer.WithSeed(42))
//	if err != nil {
//	  // ErrInvalidConfiguration
//	}
//	out, err := l.Forward([]int8{1, 0, -1, 2})
//
//	rng := rand.New(rand.NewSource(7))
//	_ = l.AddNeuron(rng)
//	_ = l.AddWeights(rng)
//
// Randomness is always explicit: New takes WithSeed/WithRand, mutations take
// a Rand argument. A Layer is not safe for concurrent use.
package layer
