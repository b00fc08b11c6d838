// SPDX-License-Identifier: MIT

// Package viz renders boundary discretizations and resonance scans with
// gonum/plot.
//
// PlotNodes draws the closed boundary polyline, a marker per node and the
// outward normal at each node as an arrow. PlotSpectrum draws σ_min(k) from
// a scan. The output format follows the file extension.
package viz
