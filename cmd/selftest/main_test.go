package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/perceptron/layer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRun_Passes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(bufLogger(&buf), 7, 5, 0))

	assert.Contains(t, buf.String(), "equality checks passed")
	assert.Contains(t, buf.String(), "< Layer with 7 neurons >")
	assert.Contains(t, buf.String(), "forward pass")
}

func TestRun_InvalidShape(t *testing.T) {
	var buf bytes.Buffer
	err := run(bufLogger(&buf), 0, 5, 0)
	require.ErrorIs(t, err, layer.ErrInvalidConfiguration)

	err = run(bufLogger(&buf), 3, 1, 0)
	require.ErrorIs(t, err, layer.ErrInvalidConfiguration)
}

func TestRootCmd_Flags(t *testing.T) {
	rootCmd.SetArgs([]string{"--neurons", "3", "--inputs", "2", "--seed", "9"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 3, neurons)
	assert.Equal(t, 2, inputs)
	assert.Equal(t, int64(9), seed)
}
