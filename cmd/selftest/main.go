// Package main - layer self-test.
//
// Builds a seeded layer, checks it against an alias of itself and against a
// deep copy, runs one forward pass on a random input and logs the outcome.
// Exit status is 1 when any check fails.
//
// Usage:
//
//	selftest --neurons 7 --inputs 5 --seed 3 --verbose
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/katalvlaran/perceptron/layer"
	"github.com/spf13/cobra"
)

// errSelfTestFailed marks a failed equality check.
var errSelfTestFailed = errors.New("selftest: layer comparison failed")

var (
	neurons int
	inputs  int
	seed    int64
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "selftest",
		Short:         "Construct a threshold layer and check it against itself",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(newLogger(verbose), neurons, inputs, seed)
		},
	}
)

func init() {
	rootCmd.Flags().IntVar(&neurons, "neurons", 7, "number of neurons in the layer")
	rootCmd.Flags().IntVar(&inputs, "inputs", 5, "number of non-bias inputs per neuron")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "weight seed (0 selects the default seed)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the weight matrix")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("selftest failed", "error", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr; debug level when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run performs the self-test and reports the first failure.
func run(log *slog.Logger, neurons, inputs int, seed int64) error {
	l, err := layer.New(neurons, inputs, layer.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("construct layer: %w", err)
	}
	log.Info("layer constructed", "layer", l.String(), "inputs", l.Inputs(), "seed", seed)
	log.Debug("weights", "matrix", l.Weights())

	alias := l
	if !l.Equal(alias) {
		return fmt.Errorf("alias: %w", errSelfTestFailed)
	}
	if !l.Equal(l.Clone()) {
		return fmt.Errorf("clone: %w", errSelfTestFailed)
	}
	log.Info("equality checks passed")

	rng := rand.New(rand.NewSource(seed + 1))
	in := make([]int8, l.Inputs())
	var i int
	for i = range in {
		in[i] = int8(rng.Intn(256) - 128)
	}
	out, err := l.Forward(in)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	log.Info("forward pass", "input", in, "output", out)

	return nil
}
