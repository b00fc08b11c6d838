// SPDX-License-Identifier: MIT

// Package matrix provides the dense complex operator matrix produced by
// boundary-element assembly.
//
// The matrix package provides:
//
//   - Matrix: a minimal bounds-checked interface over complex128 entries.
//   - Dense: row-major flat storage, with RowViews handing out disjoint row
//     slices so that independent workers can fill rows without locking.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) returning
//     plain sentinels for uniform wrapping.
//   - Fprint: the diagnostic printer (real and imaginary parts in scientific
//     notation, one row per line).
//   - gonum interop: ToCDense shares storage with a *mat.CDense, and
//     RealEmbedding builds the 2n×2n real matrix [[Re, −Im], [Im, Re]] whose
//     singular values are those of the complex matrix, each repeated twice.
//
// Dense matrices are O(r·c) memory; the operator matrices of interest are
// square and fully populated.
package matrix
