// SPDX-License-Identifier: MIT

package bem_test

import (
	"fmt"

	"github.com/MatthewScargill/gobem/bem"
	"github.com/MatthewScargill/gobem/boundary"
)

// ExampleAssemble assembles the operator for the smallest square billiard
// and prints its first row.
func ExampleAssemble() {
	nodes, err := boundary.Square(1, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	a, err := bem.Assemble(2.5, nodes)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for j := 0; j < a.Cols(); j++ {
		v, _ := a.At(0, j)
		fmt.Printf("%.4f%+.4fi\n", real(v), imag(v))
	}
	// Output:
	// -1.0000+0.0000i
	// -0.1075-0.2567i
	// 0.0912-0.3107i
	// -0.1075-0.2567i
}
