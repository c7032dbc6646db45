// SPDX-License-Identifier: MIT

// Package layer - the Layer type, construction and read-only accessors.
//
// Purpose:
//   - Own exactly one weight matrix of shape Neurons() × (Inputs()+1).
//   - Validate the shape floor at construction; never hand out a partial Layer.
//   - Expose copies, never views, so callers cannot alias the matrix.
package layer

import "fmt"

// Layer is a single layer of binary-threshold neurons.
// Row i is neuron i; column 0 is its bias weight and columns 1..Inputs()
// weigh the ordinary inputs.
//
// A Layer is NOT safe for concurrent use: callers must serialize mutation
// against inference.
type Layer struct {
	w weights
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Layer)(nil)

// New creates a layer with neurons rows and inputs non-bias inputs, every
// weight drawn uniformly from [-128, 127].
// Implementation:
//   - Stage 1: validate neurons ≥ MinNeurons and inputs ≥ MinInputs.
//   - Stage 2: resolve the random source from opts (default: DefaultSeed stream).
//   - Stage 3: allocate neurons×(inputs+1) and fill in row-major order.
//
// Errors:
//   - ErrInvalidConfiguration (no Layer is returned).
//
// Determinism:
//   - Same seed (or same Rand state) ⇒ identical matrix.
//
// Complexity:
//   - Time O(n*k), Space O(n*k).
func New(neurons, inputs int, opts ...Option) (*Layer, error) {
	if err := validateShape(ctxNew, neurons, inputs); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	w := newWeights(neurons, inputs+1) // +1 is the bias column
	fillWeights(w.data, o.rng)

	return &Layer{w: w}, nil
}

// MustNew is like New but panics on error. Intended for tests and examples.
func MustNew(neurons, inputs int, opts ...Option) *Layer {
	l, err := New(neurons, inputs, opts...)
	if err != nil {
		panic(err.Error())
	}

	return l
}

// FromWeights builds a layer from an explicit matrix. rows[i][0] is the bias
// weight of neuron i. The input is deep-copied.
//
// Errors:
//   - ErrInvalidConfiguration when len(rows) < MinNeurons or the row width
//     leaves fewer than MinInputs non-bias columns.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func FromWeights(rows [][]int8) (*Layer, error) {
	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	if err := validateShape(ctxFromWeights, len(rows), cols-1); err != nil {
		return nil, err
	}

	w := newWeights(len(rows), cols)
	var i int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, layerErrorf(ctxFromWeights, i, ErrDimensionMismatch)
		}
		copy(w.rowView(i), rows[i])
	}

	return &Layer{w: w}, nil
}

// validateShape enforces the neuron and input floors.
func validateShape(method string, neurons, inputs int) error {
	if neurons < MinNeurons {
		return configErrorf(method, msgNoNeurons)
	}
	if inputs < MinInputs {
		return configErrorf(method, msgFewInputs)
	}

	return nil
}

// Neurons returns the neuron (row) count.
// Complexity: O(1).
func (l *Layer) Neurons() int { return l.w.r }

// Inputs returns the non-bias input count expected by Forward.
// Complexity: O(1).
func (l *Layer) Inputs() int { return l.w.c - 1 }

// Cols returns the matrix column count, Inputs()+1.
// Complexity: O(1).
func (l *Layer) Cols() int { return l.w.c }

// At returns the weight of neuron row at column col (column 0 is the bias).
func (l *Layer) At(row, col int) (int8, error) {
	if l == nil {
		return 0, ErrNilLayer
	}
	if row < 0 || row >= l.w.r {
		return 0, layerErrorf(ctxAt, row, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= l.w.c {
		return 0, layerErrorf(ctxAt, col, ErrIndexOutOfBounds)
	}

	return l.w.at(row, col), nil
}

// Row returns a copy of neuron i's weights, bias first.
func (l *Layer) Row(i int) ([]int8, error) {
	if l == nil {
		return nil, ErrNilLayer
	}
	if i < 0 || i >= l.w.r {
		return nil, layerErrorf(ctxRow, i, ErrIndexOutOfBounds)
	}
	out := make([]int8, l.w.c)
	copy(out, l.w.rowView(i))

	return out, nil
}

// Weights returns a deep copy of the matrix as one slice per neuron.
// Complexity: O(n*c).
func (l *Layer) Weights() [][]int8 {
	if l == nil {
		return nil
	}
	out := make([][]int8, l.w.r)
	var i int
	for i = range out {
		out[i] = make([]int8, l.w.c)
		copy(out[i], l.w.rowView(i))
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(n*c).
func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}

	return &Layer{w: l.w.clone()}
}

// Equal reports whether both layers have the same shape and identical weights.
// Two nil layers are equal; nil never equals a non-nil layer.
//
// Complexity: O(n*c).
func (l *Layer) Equal(other *Layer) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l == other {
		return true
	}

	return l.w.equal(&other.w)
}

// String is a diagnostic summary; not meant for parsing.
func (l *Layer) String() string {
	if l == nil {
		return "< Layer <nil> >"
	}

	return fmt.Sprintf("< Layer with %d neurons >", l.w.r)
}
