// SPDX-License-Identifier: MIT
// Package layer: sentinel error set.
// Every public operation returns one of these sentinels, optionally wrapped
// with a method tag and the offending index. Tests and callers MUST match
// them via errors.Is. Caller errors never panic (MustNew is the only exception).

package layer

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> index range -> bias protection -> configuration floor.
// A failing call never leaves a partially mutated matrix behind.

var (
	// ErrInvalidConfiguration is returned when a shape violates the layer floor:
	// fewer than MinNeurons neurons or fewer than MinInputs non-bias inputs.
	ErrInvalidConfiguration = errors.New("layer: invalid configuration")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("layer: index out of bounds")

	// ErrDimensionMismatch indicates an input vector whose length differs from
	// Inputs(), or a ragged matrix passed to FromWeights.
	ErrDimensionMismatch = errors.New("layer: dimension mismatch")

	// ErrBiasColumn is returned by DeleteWeights(0): column 0 holds the bias
	// weight and cannot be removed.
	ErrBiasColumn = errors.New("layer: bias column cannot be deleted")

	// ErrNilLayer indicates a method call on a nil *Layer.
	ErrNilLayer = errors.New("layer: nil receiver")
)

// Construction messages, kept stable for grepping.
const (
	msgNoNeurons = "layer must have at least one neuron"
	msgFewInputs = "neuron must have at least two non-bias inputs"
)

// ---------- error context tags ----------

const (
	ctxNew           = "New"
	ctxFromWeights   = "FromWeights"
	ctxAt            = "At"
	ctxRow           = "Row"
	ctxForward       = "Forward"
	ctxInsertNeuron  = "InsertNeuron"
	ctxDeleteWeights = "DeleteWeights"
)

// layerErrorf wraps a sentinel with the method tag and the offending index.
// The sentinel is preserved via %w.
func layerErrorf(method string, index int, err error) error {
	return fmt.Errorf("Layer.%s(%d): %w", method, index, err)
}

// configErrorf wraps ErrInvalidConfiguration with a human message.
func configErrorf(method, msg string) error {
	return fmt.Errorf("Layer.%s: %s: %w", method, msg, ErrInvalidConfiguration)
}
