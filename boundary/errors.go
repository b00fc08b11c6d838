// SPDX-License-Identifier: MIT

package boundary

import "errors"

// Sentinel errors. Every message is prefixed with "boundary:" and callers
// match them with errors.Is.
var (
	// ErrNilNodes indicates a nil *Nodes receiver or argument.
	ErrNilNodes = errors.New("boundary: nil node set")

	// ErrEmpty indicates a node set with zero samples.
	ErrEmpty = errors.New("boundary: node set is empty")

	// ErrLengthMismatch indicates that the per-node slices differ in length.
	ErrLengthMismatch = errors.New("boundary: per-node sequences differ in length")

	// ErrSideLength indicates a non-positive or non-finite size parameter
	// (square side, circle radius).
	ErrSideLength = errors.New("boundary: size must be finite and > 0")

	// ErrNodeCount indicates a node count that violates the shape constraint.
	ErrNodeCount = errors.New("boundary: invalid node count for shape")

	// ErrTooFewVertices indicates a polygon with fewer than three vertices.
	ErrTooFewVertices = errors.New("boundary: polygon needs at least 3 vertices")

	// ErrDegenerate indicates a polygon with a zero-length edge, zero area or
	// a non-finite vertex.
	ErrDegenerate = errors.New("boundary: degenerate polygon")
)
