// SPDX-License-Identifier: MIT

package kernel

import "math"

// HankelFunc evaluates a Hankel function of the first kind at a real
// argument x.
type HankelFunc func(x float64) complex128

// Hankel1 returns H₁⁽¹⁾(x) = J₁(x) + i·Y₁(x).
// For x < 0 the imaginary part is NaN; for x == 0 it is −Inf.
func Hankel1(x float64) complex128 {
	return complex(math.J1(x), math.Y1(x))
}

// HankelN returns the strategy evaluating H_order⁽¹⁾ through the general
// integer-order Bessel routines Jn and Yn.
// HankelN(1) agrees with Hankel1 to machine precision.
func HankelN(order int) HankelFunc {
	return func(x float64) complex128 {
		return complex(math.Jn(order, x), math.Yn(order, x))
	}
}
