// SPDX-License-Identifier: MIT

package viz

import (
	"math"

	"github.com/MatthewScargill/gobem/boundary"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// headFraction is the arrow head length relative to the shaft.
	headFraction = 0.25

	// headAngle is the angle between each head stroke and the shaft.
	headAngle = math.Pi / 6
)

// segment is one straight stroke in data coordinates.
type segment [2]plotter.XY

// arrows is a plot.Plotter drawing one arrow per node along its normal.
type arrows struct {
	segs []segment
	draw.LineStyle
}

var (
	_ plot.Plotter    = (*arrows)(nil)
	_ plot.DataRanger = (*arrows)(nil)
)

// normalArrows builds a shaft and two head strokes for every node. The
// shaft runs from the node to node + scale·normal; the head strokes leave
// the tip at ±30° to the reversed normal with length 0.25·scale.
func normalArrows(nodes *boundary.Nodes, scale float64) *arrows {
	n := nodes.Len()
	a := &arrows{segs: make([]segment, 0, 3*n)}
	back := headFraction * scale
	cosA, sinA := math.Cos(headAngle), math.Sin(headAngle)
	for i := 0; i < n; i++ {
		x, y := nodes.X[i], nodes.Y[i]
		nx, ny := nodes.NX[i], nodes.NY[i]
		tip := plotter.XY{X: x + scale*nx, Y: y + scale*ny}
		a.segs = append(a.segs, segment{{X: x, Y: y}, tip})

		// reversed normal rotated by ±headAngle
		for _, s := range [2]float64{sinA, -sinA} {
			hx := -nx*cosA + ny*s
			hy := -ny*cosA - nx*s
			a.segs = append(a.segs, segment{tip, {X: tip.X + back*hx, Y: tip.Y + back*hy}})
		}
	}

	return a
}

// Plot implements plot.Plotter.
func (a *arrows) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, s := range a.segs {
		c.StrokeLine2(a.LineStyle, trX(s[0].X), trY(s[0].Y), trX(s[1].X), trY(s[1].Y))
	}
}

// DataRange implements plot.DataRanger.
func (a *arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range a.segs {
		for _, p := range s {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}

	return xmin, xmax, ymin, ymax
}
