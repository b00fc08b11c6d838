// SPDX-License-Identifier: MIT

package boundary

import "math"

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns f·v.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Dot returns the inner product v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Node is a single boundary sample, as handed to a kernel evaluator.
type Node struct {
	Pos    Vec2    // position on the boundary
	Normal Vec2    // outward unit normal at Pos
	Weight float64 // quadrature weight (panel length)
	S      float64 // arclength parameter in [0, LTotal)
}

// Nodes is the discretized boundary: N samples stored as parallel slices.
//
// Invariants (checked by Validate):
//   - X, Y, NX, NY, W and S all have the same length N ≥ 1.
//   - NX[i]²+NY[i]² ≈ 1, W[i] > 0 and S[i] ∈ [0, LTotal) for the shipped
//     discretizers (not re-checked; third-party discretizers own them).
type Nodes struct {
	X, Y   []float64 // positions
	NX, NY []float64 // outward unit normals
	W      []float64 // quadrature weights
	S      []float64 // arclength parameters

	// LTotal is the total perimeter.
	LTotal float64

	// Area is the enclosed area when the discretizer knows it, 0 otherwise.
	Area float64
}

// Len returns the number of samples N.
func (ns *Nodes) Len() int {
	if ns == nil {
		return 0
	}

	return len(ns.X)
}

// Node returns sample i. It panics if i is out of range, like a slice index.
func (ns *Nodes) Node(i int) Node {
	return Node{
		Pos:    Vec2{X: ns.X[i], Y: ns.Y[i]},
		Normal: Vec2{X: ns.NX[i], Y: ns.NY[i]},
		Weight: ns.W[i],
		S:      ns.S[i],
	}
}

// Validate checks the shape invariants of the node set.
//
// Errors:
//   - ErrNilNodes       if ns is nil.
//   - ErrEmpty          if N == 0.
//   - ErrLengthMismatch if any per-node slice differs in length from X.
//
// Complexity: O(1).
func (ns *Nodes) Validate() error {
	if ns == nil {
		return ErrNilNodes
	}
	n := len(ns.X)
	if len(ns.Y) != n || len(ns.NX) != n || len(ns.NY) != n || len(ns.W) != n || len(ns.S) != n {
		return ErrLengthMismatch
	}
	if n == 0 {
		return ErrEmpty
	}

	return nil
}

// newNodes allocates an empty node set with capacity n.
func newNodes(n int) *Nodes {
	return &Nodes{
		X:  make([]float64, 0, n),
		Y:  make([]float64, 0, n),
		NX: make([]float64, 0, n),
		NY: make([]float64, 0, n),
		W:  make([]float64, 0, n),
		S:  make([]float64, 0, n),
	}
}

// push appends one sample.
func (ns *Nodes) push(p, normal Vec2, w, s float64) {
	ns.X = append(ns.X, p.X)
	ns.Y = append(ns.Y, p.Y)
	ns.NX = append(ns.NX, normal.X)
	ns.NY = append(ns.NY, normal.Y)
	ns.W = append(ns.W, w)
	ns.S = append(ns.S, s)
}
