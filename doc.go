// Package perceptron is a building block for growable networks of
// binary-threshold neurons.
//
// Topology changes (adding neurons, adding or removing inputs) happen
// incrementally at runtime instead of through gradient training.
//
// Subpackages:
//
//	layer/        — int8 weight matrix, forward pass, structural mutations
//	cmd/selftest/ — construct a layer and check it against itself
//
//	go get github.com/katalvlaran/perceptron/layer
package perceptron
