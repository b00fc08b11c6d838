// SPDX-License-Identifier: MIT

package viz

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewNodes indicates a node set too small to draw as a closed curve.
	ErrTooFewNodes = errors.New("viz: need at least 2 nodes")

	// ErrNormalScale indicates a normal arrow length that is not finite and > 0.
	ErrNormalScale = errors.New("viz: normal scale must be finite and > 0")

	// ErrNoSamples indicates an empty scan.
	ErrNoSamples = errors.New("viz: no samples")

	// ErrFormat indicates an output extension gonum/plot cannot write.
	ErrFormat = errors.New("viz: unsupported output format")
)

const (
	opPlotNodes    = "PlotNodes"
	opPlotSpectrum = "PlotSpectrum"
)

func vizErrorf(op string, err error) error {
	return fmt.Errorf("viz: %s: %w", op, err)
}
