// SPDX-License-Identifier: MIT

package bem_test

import (
	"testing"

	"github.com/MatthewScargill/gobem/bem"
)

// benchmarkAssemble assembles a square of n nodes at k = 10 with opts.
func benchmarkAssemble(b *testing.B, n int, opts ...bem.Option) {
	ns := mustSquare(b, 1, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bem.Assemble(10, ns, opts...); err != nil {
			b.Fatalf("Assemble failed: %v", err)
		}
	}
}

// BenchmarkAssemble_Sequential256 assembles N=256 on one worker.
func BenchmarkAssemble_Sequential256(b *testing.B) {
	benchmarkAssemble(b, 256, bem.WithWorkers(1))
}

// BenchmarkAssemble_Parallel256 assembles N=256 with the default pool.
func BenchmarkAssemble_Parallel256(b *testing.B) {
	benchmarkAssemble(b, 256)
}

// BenchmarkAssemble_Parallel1024 assembles N=1024 with the default pool.
func BenchmarkAssemble_Parallel1024(b *testing.B) {
	benchmarkAssemble(b, 1024)
}
