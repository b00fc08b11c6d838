// SPDX-License-Identifier: MIT

package viz_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/spectrum"
	"github.com/MatthewScargill/gobem/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlotNodes_Formats renders the reference square in several formats.
func TestPlotNodes_Formats(t *testing.T) {
	nodes, err := boundary.Square(1, 24)
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"nodes.svg", "nodes.png", "nodes.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, viz.PlotNodes(path, nodes, 0.2), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "nodes.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

// TestNodesPlot_Errors covers every rejected input.
func TestNodesPlot_Errors(t *testing.T) {
	square, err := boundary.Square(1, 8)
	require.NoError(t, err)
	single := &boundary.Nodes{
		X: []float64{0}, Y: []float64{0},
		NX: []float64{1}, NY: []float64{0},
		W: []float64{1}, S: []float64{0},
	}

	_, err = viz.NodesPlot(nil, 1)
	assert.ErrorIs(t, err, boundary.ErrNilNodes)
	_, err = viz.NodesPlot(single, 1)
	assert.ErrorIs(t, err, viz.ErrTooFewNodes)
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = viz.NodesPlot(square, s)
		assert.ErrorIs(t, err, viz.ErrNormalScale, "scale %v", s)
	}
}

// TestPlotNodes_BadFormat checks that unknown extensions are rejected
// before anything is written.
func TestPlotNodes_BadFormat(t *testing.T) {
	nodes, err := boundary.Square(1, 8)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "nodes.txt")

	err = viz.PlotNodes(path, nodes, 0.1)
	assert.ErrorIs(t, err, viz.ErrFormat)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

// TestPlotSpectrum renders a short scan and rejects an empty one.
func TestPlotSpectrum(t *testing.T) {
	samples := []spectrum.Sample{{K: 1, SigmaMin: 0.5}, {K: 2, SigmaMin: 0.1}, {K: 3, SigmaMin: 0.4}}
	path := filepath.Join(t.TempDir(), "spectrum.svg")

	require.NoError(t, viz.PlotSpectrum(path, samples))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = viz.PlotSpectrum(path, nil)
	assert.ErrorIs(t, err, viz.ErrNoSamples)
}
