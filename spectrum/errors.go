// SPDX-License-Identifier: MIT

package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRange indicates an invalid wavenumber range or sample count.
	ErrBadRange = errors.New("spectrum: invalid wavenumber range")

	// ErrSVDFailed indicates that the singular value decomposition did not
	// converge.
	ErrSVDFailed = errors.New("spectrum: SVD failed")

	// ErrNotCirculant indicates a matrix whose rows are not cyclic shifts of
	// the first row.
	ErrNotCirculant = errors.New("spectrum: matrix is not circulant")
)

const (
	opSigmaMin     = "SmallestSingularValue"
	opCirculant    = "CirculantSmallestSingularValue"
	opWavenumbers  = "Wavenumbers"
	opScan         = "Scan"
	opRefine       = "Refine"
	opRefineMinima = "RefineMinima"
	opResonances   = "Resonances"
	opWeyl         = "WeylCountNodes"
)

// spectrumErrorf tags err with the operation name.
func spectrumErrorf(op string, err error) error {
	return fmt.Errorf("spectrum: %s: %w", op, err)
}
