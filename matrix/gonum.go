// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToCDense returns a gonum *mat.CDense sharing m's storage, for handing the
// operator to gonum routines. Writes through either view are visible in both.
func ToCDense(m *Dense) (*mat.CDense, error) {
	if m == nil {
		return nil, matrixErrorf(opToCDense, ErrNilMatrix)
	}

	return mat.NewCDense(m.r, m.c, m.data), nil
}

// RealEmbedding returns the 2r×2c real matrix
//
//	[ Re A  −Im A ]
//	[ Im A   Re A ]
//
// It represents A acting on ℂᶜ ≅ ℝ²ᶜ; its singular values are exactly those
// of A, each with doubled multiplicity, which lets real SVD routines answer
// questions about the complex operator.
//
// Complexity: O(r*c) time, 4·r·c float64 of memory.
func RealEmbedding(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opRealEmbedding, ErrNilMatrix)
	}

	r, c := m.r, m.c
	out := mat.NewDense(2*r, 2*c, nil)
	for i := 0; i < r; i++ {
		row := m.data[i*c : (i+1)*c]
		for j, v := range row {
			re, im := real(v), imag(v)
			out.Set(i, j, re)
			out.Set(i, j+c, -im)
			out.Set(i+r, j, im)
			out.Set(i+r, j+c, re)
		}
	}

	return out, nil
}
