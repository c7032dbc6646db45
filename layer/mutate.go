// SPDX-License-Identifier: MIT

// Package layer - structural mutations.
//
// Every mutation validates first and draws/copies into fresh storage second,
// so an error always leaves the matrix exactly as it was. Random draws come
// from the Rand passed to the call; nil selects the DefaultSeed stream.
package layer

// InsertNeuron inserts a neuron with fresh random weights at row index,
// shifting neurons at index and below down by one. index may equal Neurons()
// (append).
//
// Errors:
//   - ErrIndexOutOfBounds when index < 0 or index > Neurons().
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (l *Layer) InsertNeuron(index int, rng Rand) error {
	if l == nil {
		return ErrNilLayer
	}
	if index < 0 || index > l.w.r {
		return layerErrorf(ctxInsertNeuron, index, ErrIndexOutOfBounds)
	}

	row := make([]int8, l.w.c)
	fillWeights(row, orDefault(rng))
	l.w.insertRow(index, row)

	return nil
}

// AddNeuron appends a neuron with fresh random weights as the last row.
func (l *Layer) AddNeuron(rng Rand) error {
	if l == nil {
		return ErrNilLayer
	}

	return l.InsertNeuron(l.w.r, rng)
}

// AddWeights appends one input to every neuron: each row gets an independent
// random weight in a new last column, drawn in row order.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (l *Layer) AddWeights(rng Rand) error {
	if l == nil {
		return ErrNilLayer
	}

	col := make([]int8, l.w.r)
	fillWeights(col, orDefault(rng))
	l.w.appendCol(col)

	return nil
}

// DeleteWeights removes matrix column index from every neuron. Column 0 is the
// bias and is protected; input j lives at column j.
//
// Errors:
//   - ErrIndexOutOfBounds when index < 0 or index >= Cols().
//   - ErrBiasColumn when index == 0.
//   - ErrInvalidConfiguration when fewer than MinInputs inputs would remain.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (l *Layer) DeleteWeights(index int) error {
	if l == nil {
		return ErrNilLayer
	}
	if index < 0 || index >= l.w.c {
		return layerErrorf(ctxDeleteWeights, index, ErrIndexOutOfBounds)
	}
	if index == 0 {
		return layerErrorf(ctxDeleteWeights, index, ErrBiasColumn)
	}
	if l.Inputs()-1 < MinInputs {
		return configErrorf(ctxDeleteWeights, msgFewInputs)
	}

	l.w.deleteCol(index)

	return nil
}
