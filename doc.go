// Package gobem finds resonances of two-dimensional quantum billiards with
// the boundary element method.
//
// What is in the box?
//
//	A pure-Go pipeline from a closed curve to the wavenumbers at which the
//	billiard rings:
//		• Boundary: discretize a square, polygon or circle into nodes,
//		  outward normals and quadrature weights
//		• Kernel: the Helmholtz double-layer kernel (−ik/4)·H₁⁽¹⁾(kr)·(x−y)·n/r
//		  with its jump value at coincident points
//		• Assembly: the dense complex operator −½I + K·W, filled row by row
//		  on a bounded worker pool
//		• Spectrum: σ_min(A(k)) scans, local minima, golden-section refinement
//		  and the Weyl estimate
//		• Plots: nodes with normals and σ_min(k) curves through gonum/plot
//
// Packages:
//
//	boundary/  Vec2, Node and the structure-of-arrays Nodes set + discretizers
//	kernel/    Evaluator interface, DoubleLayer kernel, Hankel strategies
//	matrix/    complex Dense storage, validators, printer, gonum interop
//	bem/       parallel operator assembly and cache tags
//	spectrum/  smallest singular value, scans, refinement, Weyl count
//	cache/     BadgerDB σ_min store keyed by configuration tag and geometry
//	viz/       gonum/plot figures
//	cmd/gobem  command line front end
//
// Quick example (unit square, 24 nodes, k = 2.5):
//
//	nodes, _ := boundary.Square(1, 24)
//	a, _ := bem.Assemble(2.5, nodes)
//	sigma, _ := spectrum.SmallestSingularValue(a)
//
// A dip of sigma towards zero as k varies marks a resonance.
//
//	go install github.com/MatthewScargill/gobem/cmd/gobem@latest
package gobem
