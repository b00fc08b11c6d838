// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// Fprint writes m to w, one row per line, each entry rendered as its real
// and imaginary parts in scientific notation ("%12.4e%+12.4ei") followed by
// two spaces.
//
// Errors: ErrNilMatrix, or the first write error from w.
// Complexity: O(r*c).
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opFprint, err)
			}
			fmt.Fprintf(bw, "%12.4e%+12.4ei  ", real(v), imag(v))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opFprint, err)
	}

	return nil
}
