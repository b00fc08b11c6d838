// SPDX-License-Identifier: MIT

// Package boundary describes a closed 2D billiard boundary discretized into
// panels, and provides the reference discretizers that produce it.
//
// What & Why:
//
//	The boundary integral operator of the Helmholtz equation is sampled at a
//	finite set of boundary points. Each sample carries its position, the
//	outward unit normal, the panel length it represents (quadrature weight)
//	and its arclength parameter. Nodes stores these as parallel slices so the
//	assembler can stream over them without pointer chasing.
//
// Discretizers:
//   - Square:  reference discretizer, N (multiple of 4) midpoints on a square.
//   - Polygon: any closed simple polygon, orientation detected from its area.
//   - Circle:  smooth boundary sampled at equal angles.
//
// All discretizers place nodes at panel midpoints, so no node sits on a
// corner where the normal is undefined.
//
// Nodes are never mutated after construction; the same set can be reused
// across many wavenumbers.
package boundary
