// SPDX-License-Identifier: MIT

package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/MatthewScargill/gobem/matrix"
	"github.com/mjibson/go-dsp/fft"
)

// circulantTol is the relative deviation tolerated between a row and the
// cyclic shift of row 0.
const circulantTol = 1e-9

// CirculantSmallestSingularValue returns σ_min of a circulant matrix as the
// smallest modulus of the DFT of its first row. Operators assembled on a
// Circle with equal weights are circulant, and circulant matrices are
// normal, so their singular values are the moduli of their eigenvalues.
//
// Every row must equal the cyclic shift of row 0 to within 1e-9 of the
// largest entry; otherwise ErrNotCirculant is returned.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
// ErrNotCirculant.
// Complexity: O(N²) for the check, O(N log N) for the transform.
func CirculantSmallestSingularValue(a *matrix.Dense) (float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, spectrumErrorf(opCirculant, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return 0, spectrumErrorf(opCirculant, err)
	}

	n := a.Rows()
	data := a.Data()
	first := data[:n]

	var scale float64
	for _, v := range data {
		scale = math.Max(scale, cmplx.Abs(v))
	}
	tol := circulantTol * scale
	for i := 1; i < n; i++ {
		row := data[i*n : (i+1)*n]
		for j, v := range row {
			if cmplx.Abs(v-first[(j-i+n)%n]) > tol {
				return 0, spectrumErrorf(opCirculant, ErrNotCirculant)
			}
		}
	}

	sigma := math.Inf(1)
	for _, lambda := range fft.FFT(first) {
		sigma = math.Min(sigma, cmplx.Abs(lambda))
	}

	return sigma, nil
}
