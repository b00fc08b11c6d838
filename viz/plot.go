// SPDX-License-Identifier: MIT

package viz

import (
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/spectrum"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size of saved figures.
const (
	NodesSize    = 6 * vg.Inch
	SpectrumW    = 8 * vg.Inch
	SpectrumH    = 4 * vg.Inch
	markerRadius = 2
)

var (
	boundaryColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	nodeColor     = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	normalColor   = color.RGBA{R: 30, G: 90, B: 200, A: 255}
)

// formats lists the extensions plot.Save can write.
var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// NodesPlot builds the boundary figure: the closed polyline through the
// nodes, a marker per node and an arrow of length normalScale along each
// outward normal.
//
// Errors: node validation errors, ErrTooFewNodes, ErrNormalScale.
func NodesPlot(nodes *boundary.Nodes, normalScale float64) (*plot.Plot, error) {
	if err := nodes.Validate(); err != nil {
		return nil, err
	}
	n := nodes.Len()
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if !(normalScale > 0) || math.IsInf(normalScale, 1) {
		return nil, ErrNormalScale
	}

	pts := make(plotter.XYs, n+1)
	for i := 0; i < n; i++ {
		pts[i] = plotter.XY{X: nodes.X[i], Y: nodes.Y[i]}
	}
	pts[n] = pts[0]

	outline, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Color = boundaryColor
	outline.LineStyle.Width = vg.Points(1)

	markers, err := plotter.NewScatter(pts[:n])
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle.Color = nodeColor
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	markers.GlyphStyle.Radius = vg.Points(markerRadius)

	normals := normalArrows(nodes, normalScale)
	normals.LineStyle = draw.LineStyle{Color: normalColor, Width: vg.Points(0.75)}

	p := plot.New()
	p.Title.Text = "Boundary nodes and normals"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(outline, normals, markers)

	return p, nil
}

// PlotNodes renders NodesPlot to path. The format follows the extension.
func PlotNodes(path string, nodes *boundary.Nodes, normalScale float64) error {
	if err := checkFormat(path); err != nil {
		return vizErrorf(opPlotNodes, err)
	}
	p, err := NodesPlot(nodes, normalScale)
	if err != nil {
		return vizErrorf(opPlotNodes, err)
	}
	if err := p.Save(NodesSize, NodesSize, path); err != nil {
		return vizErrorf(opPlotNodes, err)
	}

	return nil
}

// SpectrumPlot builds the σ_min(k) figure of a scan.
//
// Errors: ErrNoSamples.
func SpectrumPlot(samples []spectrum.Sample) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{X: s.K, Y: s.SigmaMin}
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = normalColor
	points.GlyphStyle.Color = normalColor
	points.GlyphStyle.Radius = vg.Points(markerRadius / 2.0)

	p := plot.New()
	p.Title.Text = "Smallest singular value"
	p.X.Label.Text = "k"
	p.Y.Label.Text = "σ_min"
	p.Y.Min = 0
	p.Add(plotter.NewGrid(), line, points)

	return p, nil
}

// PlotSpectrum renders SpectrumPlot to path.
func PlotSpectrum(path string, samples []spectrum.Sample) error {
	if err := checkFormat(path); err != nil {
		return vizErrorf(opPlotSpectrum, err)
	}
	p, err := SpectrumPlot(samples)
	if err != nil {
		return vizErrorf(opPlotSpectrum, err)
	}
	if err := p.Save(SpectrumW, SpectrumH, path); err != nil {
		return vizErrorf(opPlotSpectrum, err)
	}

	return nil
}

func checkFormat(path string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return ErrFormat
	}

	return nil
}
