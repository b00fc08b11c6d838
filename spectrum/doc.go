// SPDX-License-Identifier: MIT

// Package spectrum searches for billiard resonances: wavenumbers k at which
// the assembled boundary operator A(k) becomes nearly singular.
//
// The smallest singular value σ_min(A(k)) is the detector. Scan evaluates it
// over a sweep of wavenumbers, Minima picks the local minima below a
// threshold, Refine narrows a bracketed minimum by golden-section search, and
// Resonances chains the three.
//
// σ_min is computed by a real SVD (gonum/mat) of the 2N×2N real embedding
// of A(k), whose singular values are those of A(k) repeated twice.
//
// WeylCount gives the smoothed eigenvalue count A·k²/4π − L·k/4π, a quick
// check on how many resonances a sweep should expect.
package spectrum
