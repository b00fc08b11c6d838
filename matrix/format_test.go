// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/MatthewScargill/gobem/matrix"
	"github.com/stretchr/testify/require"
)

// TestFprint_Layout pins the diagnostic printer format.
func TestFprint_Layout(t *testing.T) {
	m, _ := matrix.NewDenseFrom(2, 2, []complex128{-0.5, 1.25 - 3e-7i, 0, 12345.678 + 1i})

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, m))

	want := " -5.0000e-01 +0.0000e+00i    1.2500e+00 -3.0000e-07i  \n" +
		"  0.0000e+00 +0.0000e+00i    1.2346e+04 +1.0000e+00i  \n"
	require.Equal(t, want, buf.String())
}

// TestFprint_GenericPath prints through the interface-only path.
func TestFprint_GenericPath(t *testing.T) {
	m, _ := matrix.NewDense(3, 3)
	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, hide{m}))
	require.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestFprint_Errors covers nil input and writer failure.
func TestFprint_Errors(t *testing.T) {
	require.ErrorIs(t, matrix.Fprint(&bytes.Buffer{}, nil), matrix.ErrNilMatrix)

	m, _ := matrix.NewDense(1, 1)
	require.ErrorIs(t, matrix.Fprint(failWriter{}, m), errWrite)
}
