// SPDX-License-Identifier: MIT

// Package bem assembles the dense boundary-element operator matrix of the
// 2D Helmholtz double-layer equation.
//
// 🚀 What is assembled?
//
//	For a node set of N boundary samples and a wavenumber k,
//
//	    A[i][j] = δᵢⱼ·(−½) + K(xᵢ, nᵢ, yⱼ; k) · wⱼ
//
//	where K is the kernel (kernel.DoubleLayer by default) and wⱼ is the
//	quadrature weight of the source node j. A(k) becomes (near-)singular at
//	the resonances of the billiard.
//
// ⚙️ Usage:
//
//	nodes, _ := boundary.Square(1, 24)
//	a, err := bem.Assemble(2.5, nodes)
//
// Concurrency:
//
//	Rows are independent. The output matrix is allocated up front and split
//	into disjoint row views; a fixed-size pool (errgroup with SetLimit)
//	fills one row per task, and Wait is the only barrier. There is no shared
//	mutable state, no locking and no reduction, so the result is
//	bit-identical for any worker count.
//
// Diagonal:
//
//	The jump term −½ is added on the diagonal while the default kernel also
//	returns its −½ jump limit for the coincident pair, so A[i][i] =
//	−½ − ½·wᵢ. Whether both terms belong in the intended formulation is an
//	open question; the behavior is kept as is and pinned by tests.
//
// Performance:
//
//   - Time:   O(N²) kernel evaluations, divided across workers.
//   - Memory: O(N²) for the result only.
package bem
