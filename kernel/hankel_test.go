// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"testing"

	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/kernel"
	"github.com/stretchr/testify/assert"
)

// TestHankel1_KnownValues checks tabulated J₁ and Y₁ values.
func TestHankel1_KnownValues(t *testing.T) {
	h := kernel.Hankel1(1)
	assert.InDelta(t, 0.44005058574493355, real(h), 1e-14)
	assert.InDelta(t, -0.7812128213002887, imag(h), 1e-14)

	h = kernel.Hankel1(2.5)
	assert.InDelta(t, 0.4970941024642741, real(h), 1e-14)
	assert.InDelta(t, 0.1459181379667858, imag(h), 1e-14)
}

// TestHankel_StrategiesAgree verifies that the J₁/Y₁ and Jn/Yn evaluation
// strategies agree to machine precision over a wide argument range.
func TestHankel_StrategiesAgree(t *testing.T) {
	general := kernel.HankelN(1)
	for x := 1e-6; x < 500; x *= 1.37 {
		a, b := kernel.Hankel1(x), general(x)
		assert.InDelta(t, real(a), real(b), 4*math.SmallestNonzeroFloat64+1e-16*math.Abs(real(a)), "x=%g", x)
		assert.InDelta(t, imag(a), imag(b), 4*math.SmallestNonzeroFloat64+1e-16*math.Abs(imag(a)), "x=%g", x)
	}
}

// TestHankel_KernelStrategySwap checks that the kernel gives identical
// results under both strategies.
func TestHankel_KernelStrategySwap(t *testing.T) {
	a := kernel.NewDoubleLayer()
	b := kernel.NewDoubleLayer(kernel.WithHankel(kernel.HankelN(1)))
	ns, _ := boundary.Square(1, 12)
	for i := 0; i < ns.Len(); i++ {
		for j := 0; j < ns.Len(); j++ {
			va := a.Evaluate(ns.Node(i), ns.Node(j), 3.3)
			vb := b.Evaluate(ns.Node(i), ns.Node(j), 3.3)
			assert.InDelta(t, real(va), real(vb), 1e-15*math.Max(1, math.Abs(real(va))))
			assert.InDelta(t, imag(va), imag(vb), 1e-15*math.Max(1, math.Abs(imag(va))))
		}
	}
}

// TestHankel_HigherOrder sanity-checks H₀ through the recurrence
// H₀ + H₂ = (2/x)·H₁.
func TestHankel_HigherOrder(t *testing.T) {
	h0, h1, h2 := kernel.HankelN(0), kernel.HankelN(1), kernel.HankelN(2)
	for _, x := range []float64{0.3, 1, 4.2, 17} {
		lhs := h0(x) + h2(x)
		rhs := complex(2/x, 0) * h1(x)
		assert.InDelta(t, real(rhs), real(lhs), 1e-12)
		assert.InDelta(t, imag(rhs), imag(lhs), 1e-12)
	}
}
