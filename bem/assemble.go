// SPDX-License-Identifier: MIT

package bem

import (
	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/matrix"
	"golang.org/x/sync/errgroup"
)

// Assemble builds the N×N operator matrix A(k) for the node set.
//
// Implementation:
//   - Stage 1: validate the node set (equal per-node lengths, N ≥ 1).
//   - Stage 2: allocate the N×N result and split it into disjoint row views.
//   - Stage 3: fill rows on a pool of at most `workers` goroutines, one row
//     per task; Wait joins all of them before the matrix is returned.
//
// Behavior highlights:
//   - A[i][j] = [i==j]·diagonal + K(node_i, node_j, k)·w_j.
//   - Column j uses the source node's weight w_j, never the row's.
//   - The node set is only read; the same set may be assembled at many k.
//   - Output is bit-identical for any worker count.
//
// Errors:
//   - boundary.ErrNilNodes, boundary.ErrEmpty, boundary.ErrLengthMismatch,
//     wrapped with the operation tag. No matrix is returned on error.
//
// Complexity:
//   - Time O(N²) kernel calls, Space O(N²).
func Assemble(k float64, nodes *boundary.Nodes, opts ...Option) (*matrix.Dense, error) {
	if err := nodes.Validate(); err != nil {
		return nil, bemErrorf(opAssemble, err)
	}
	o := gatherOptions(opts...)

	n := nodes.Len()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, bemErrorf(opAssemble, err)
	}

	rows := a.RowViews()
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, row := range rows {
		g.Go(func() error {
			fillRow(k, nodes, i, row, &o)

			return nil
		})
	}
	// rows cannot fail; Wait is the join barrier
	_ = g.Wait()

	return a, nil
}

// AssembleRow computes row i of A(k) into row, which must have length N.
// It is the single-row form of Assemble, useful for diagnostics and for
// callers that schedule rows themselves.
//
// Errors: node set validation errors, ErrRowIndex, ErrRowLength.
func AssembleRow(k float64, nodes *boundary.Nodes, i int, row []complex128, opts ...Option) error {
	if err := nodes.Validate(); err != nil {
		return bemErrorf(opAssembleRow, err)
	}
	n := nodes.Len()
	if i < 0 || i >= n {
		return bemErrorf(opAssembleRow, ErrRowIndex)
	}
	if len(row) != n {
		return bemErrorf(opAssembleRow, ErrRowLength)
	}

	o := gatherOptions(opts...)
	fillRow(k, nodes, i, row, &o)

	return nil
}

// fillRow writes row i. It touches only row and read-only inputs.
func fillRow(k float64, nodes *boundary.Nodes, i int, row []complex128, o *Options) {
	obs := nodes.Node(i)
	for j := range row {
		var v complex128
		if i == j {
			v = o.diagonal
		}
		v += o.kernel.Evaluate(obs, nodes.Node(j), k) * complex(nodes.W[j], 0)
		row[j] = v
	}
}
