// SPDX-License-Identifier: MIT

// Package kernel evaluates the boundary-integral kernel of the 2D Helmholtz
// double-layer operator.
//
// What & Why:
//
//	For an observation point x with outward normal n and a source point y on
//	the boundary, the double-layer kernel at wavenumber k is
//
//	    K(x, y) = (−i·k/4) · H₁⁽¹⁾(k·r) · ((x − y)·n) / r,   r = |x − y|.
//
//	As y → x the kernel has a finite jump limit; DoubleLayer returns that
//	constant (−½ by default) exactly whenever r² falls below a configurable
//	threshold instead of evaluating the singular formula near r = 0.
//
// Substitutability:
//
//	Assemblers depend only on the Evaluator interface, so a different
//	operator or Green's function is plugged in without touching assembly.
//	Func adapts a plain function to Evaluator.
//
// Numerics:
//   - r² and (x − y)·n are formed with fused multiply-add.
//   - H₁⁽¹⁾ is evaluated as J₁ + i·Y₁ (HankelFunc strategies are swappable).
//   - k == 0 returns the static (Laplace) limit −((x−y)·n)/(2π r²).
//   - Negative k and non-finite coordinates propagate as NaN/Inf; nothing is
//     signalled.
package kernel
