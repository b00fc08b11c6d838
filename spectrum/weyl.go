// SPDX-License-Identifier: MIT

package spectrum

import (
	"math"

	"github.com/MatthewScargill/gobem/boundary"
)

// WeylCount returns the smoothed number of Dirichlet eigenvalues below k for
// a billiard of the given area and perimeter:
//
//	N(k) ≈ A·k²/(4π) − L·k/(4π).
//
// The estimate is asymptotic; for small k it can be negative.
func WeylCount(area, perimeter, k float64) float64 {
	return (area*k*k - perimeter*k) / (4 * math.Pi)
}

// WeylCountNodes evaluates WeylCount with the area and perimeter recorded
// on the node set.
//
// Errors: boundary.ErrNilNodes.
func WeylCountNodes(nodes *boundary.Nodes, k float64) (float64, error) {
	if nodes == nil {
		return 0, spectrumErrorf(opWeyl, boundary.ErrNilNodes)
	}

	return WeylCount(nodes.Area, nodes.LTotal, k), nil
}
