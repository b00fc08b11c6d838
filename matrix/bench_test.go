// SPDX-License-Identifier: MIT

package matrix_test

import (
	"io"
	"testing"

	"github.com/MatthewScargill/gobem/matrix"
)

// filled returns an n×n matrix with distinct entries.
func filled(b *testing.B, n int) *matrix.Dense {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i, v := range m.Data() {
		m.Data()[i] = v + complex(float64(i), -float64(i))
	}

	return m
}

// BenchmarkRealEmbedding_256 builds the 512×512 real embedding.
func BenchmarkRealEmbedding_256(b *testing.B) {
	m := filled(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.RealEmbedding(m); err != nil {
			b.Fatalf("RealEmbedding failed: %v", err)
		}
	}
}

// BenchmarkFprint_64 formats a 64×64 matrix.
func BenchmarkFprint_64(b *testing.B) {
	m := filled(b, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := matrix.Fprint(io.Discard, m); err != nil {
			b.Fatalf("Fprint failed: %v", err)
		}
	}
}

// BenchmarkValidateFinite_256 scans a 256×256 matrix.
func BenchmarkValidateFinite_256(b *testing.B) {
	m := filled(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := matrix.ValidateFinite(m); err != nil {
			b.Fatalf("ValidateFinite failed: %v", err)
		}
	}
}
