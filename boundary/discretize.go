// SPDX-License-Identifier: MIT

package boundary

import "math"

// Square discretizes the square [0,a]×[0,a] into n panels of equal length.
//
// Implementation:
//   - Stage 1: validate a > 0 (finite) and n ≥ 4 with n mod 4 == 0.
//   - Stage 2: walk the perimeter counter-clockwise from the origin
//     (bottom → right → top → left), placing node i at the panel midpoint
//     s_i = (i + ½)·h with h = 4a/n.
//
// Behavior highlights:
//   - Normals: bottom (0,-1), right (1,0), top (0,1), left (-1,0).
//   - Every weight equals 4a/n; LTotal = 4a; Area = a².
//   - Midpoints keep every node away from the corners.
//
// Errors:
//   - ErrSideLength if a is not finite and > 0.
//   - ErrNodeCount  if n is not a positive multiple of 4.
//
// Complexity: O(n) time and memory.
func Square(a float64, n int) (*Nodes, error) {
	if !(a > 0) || math.IsInf(a, 1) {
		return nil, ErrSideLength
	}
	if n < 4 || n%4 != 0 {
		return nil, ErrNodeCount
	}

	corners := []Vec2{{0, 0}, {a, 0}, {a, a}, {0, a}}
	ns := walkPolygon(corners, n, 4*a, 1)
	ns.Area = a * a

	return ns, nil
}

// Polygon discretizes a closed simple polygon into n panels of equal
// arclength. Vertices may be given in either orientation; normals always
// point away from the enclosed region. The closing edge from the last vertex
// back to the first is implicit.
//
// Errors:
//   - ErrTooFewVertices if len(vertices) < 3.
//   - ErrNodeCount      if n < len(vertices).
//   - ErrDegenerate     on a non-finite vertex, a zero-length edge or zero area.
//
// Complexity: O(n + len(vertices)).
func Polygon(vertices []Vec2, n int) (*Nodes, error) {
	m := len(vertices)
	if m < 3 {
		return nil, ErrTooFewVertices
	}
	if n < m {
		return nil, ErrNodeCount
	}

	var perimeter, area2 float64
	for i := 0; i < m; i++ {
		a, b := vertices[i], vertices[(i+1)%m]
		if !isFinite(a.X) || !isFinite(a.Y) {
			return nil, ErrDegenerate
		}
		l := b.Sub(a).Norm()
		if l == 0 {
			return nil, ErrDegenerate
		}
		perimeter += l
		area2 += a.X*b.Y - b.X*a.Y // shoelace
	}
	if area2 == 0 {
		return nil, ErrDegenerate
	}

	orient := 1.0
	if area2 < 0 {
		orient = -1
	}
	ns := walkPolygon(vertices, n, perimeter, orient)
	ns.Area = math.Abs(area2) / 2

	return ns, nil
}

// walkPolygon places n midpoint nodes along the closed polyline. orient is
// +1 for counter-clockwise vertices and -1 for clockwise ones.
func walkPolygon(vertices []Vec2, n int, perimeter, orient float64) *Nodes {
	m := len(vertices)
	h := perimeter / float64(n)
	halfH := 0.5 * h

	ns := newNodes(n)
	ns.LTotal = perimeter

	var (
		edge  int     // current edge index
		start float64 // arclength at the start of the current edge
	)
	a, b := vertices[0], vertices[1%m]
	l := b.Sub(a).Norm()
	for i := 0; i < n; i++ {
		s := float64(i)*h + halfH
		if s >= perimeter {
			s -= perimeter * math.Floor(s/perimeter)
		}

		// advance to the edge containing s; the last edge absorbs rounding
		for edge < m-1 && s >= start+l {
			start += l
			edge++
			a, b = vertices[edge], vertices[(edge+1)%m]
			l = b.Sub(a).Norm()
		}
		t := s - start

		d := Vec2{X: (b.X - a.X) / l, Y: (b.Y - a.Y) / l}
		p := Vec2{X: a.X + t*d.X, Y: a.Y + t*d.Y}
		normal := Vec2{X: orient * d.Y, Y: -orient * d.X}
		ns.push(p, normal, h, s)
	}

	return ns
}

// Circle discretizes the circle of the given radius centred at the origin
// into n equal arcs, with nodes at angles (i + ½)·2π/n.
//
// Errors:
//   - ErrSideLength if radius is not finite and > 0.
//   - ErrNodeCount  if n < 3.
//
// Complexity: O(n).
func Circle(radius float64, n int) (*Nodes, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, ErrSideLength
	}
	if n < 3 {
		return nil, ErrNodeCount
	}

	ns := newNodes(n)
	ns.LTotal = 2 * math.Pi * radius
	ns.Area = math.Pi * radius * radius
	dTheta := 2 * math.Pi / float64(n)
	w := ns.LTotal / float64(n)
	for i := 0; i < n; i++ {
		theta := (float64(i) + 0.5) * dTheta
		sin, cos := math.Sincos(theta)
		ns.push(Vec2{X: radius * cos, Y: radius * sin}, Vec2{X: cos, Y: sin}, w, radius*theta)
	}

	return ns, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
