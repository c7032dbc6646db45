// SPDX-License-Identifier: MIT

// Package layer - forward pass.
//
// Arithmetic contract:
//   - Each weight×input product is computed in int8 and wraps modulo 256
//     (two's complement), e.g. 100*2 == -56. This narrow multiply decides
//     observable outputs and is kept on purpose.
//   - Products are summed in int64, so the reduction itself never wraps.
//   - Activation is Heaviside with H(0) = 0: output 1 iff sum > 0.
package layer

// Forward computes the binary output of every neuron for inputs.
// Implementation:
//   - Stage 1: validate len(inputs) == Inputs(); else ErrDimensionMismatch.
//   - Stage 2: per row, accumulate w[0]*BiasInput + Σ w[j]*inputs[j-1] (int8 products).
//   - Stage 3: threshold each sum.
//
// Returns:
//   - []int8 of length Neurons(), each entry 0 or 1.
//
// Complexity:
//   - Time O(n*c), Space O(n).
func (l *Layer) Forward(inputs []int8) ([]int8, error) {
	sums, err := l.activations(ctxForward, inputs)
	if err != nil {
		return nil, err
	}

	out := make([]int8, len(sums))
	var i int
	for i = range sums {
		out[i] = heaviside(sums[i])
	}

	return out, nil
}

// Activations returns the pre-threshold sum of every neuron, i.e. what Forward
// feeds into the step function. Same validation and arithmetic as Forward.
func (l *Layer) Activations(inputs []int8) ([]int64, error) {
	return l.activations(ctxForward, inputs)
}

func (l *Layer) activations(method string, inputs []int8) ([]int64, error) {
	if l == nil {
		return nil, ErrNilLayer
	}
	if len(inputs) != l.Inputs() {
		return nil, layerErrorf(method, len(inputs), ErrDimensionMismatch)
	}

	sums := make([]int64, l.w.r)
	var (
		i, j int
		row  []int8
		acc  int64
	)
	for i = 0; i < l.w.r; i++ {
		row = l.w.rowView(i)
		acc = int64(row[0] * BiasInput) // bias column
		for j = 1; j < l.w.c; j++ {
			acc += int64(row[j] * inputs[j-1]) // int8 product wraps before widening
		}
		sums[i] = acc
	}

	return sums, nil
}

// heaviside maps a sum to 1 when strictly positive, 0 otherwise.
func heaviside(x int64) int8 {
	if x > 0 {
		return 1
	}

	return 0
}
