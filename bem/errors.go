// SPDX-License-Identifier: MIT

package bem

import (
	"errors"
	"fmt"
)

var (
	// ErrRowIndex indicates a row index outside [0, N).
	ErrRowIndex = errors.New("bem: row index out of range")

	// ErrRowLength indicates a row buffer whose length is not N.
	ErrRowLength = errors.New("bem: row buffer length must equal node count")
)

const (
	opAssemble    = "Assemble"
	opAssembleRow = "AssembleRow"
)

// bemErrorf tags err with the operation name, preserving it for errors.Is.
func bemErrorf(op string, err error) error {
	return fmt.Errorf("bem: %s: %w", op, err)
}
