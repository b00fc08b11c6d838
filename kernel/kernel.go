// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"github.com/MatthewScargill/gobem/boundary"
)

// Evaluator is the kernel capability consumed by operator assembly: the
// influence of source node src on observation node obs at wavenumber k.
// Implementations must be safe for concurrent use.
type Evaluator interface {
	Evaluate(obs, src boundary.Node, k float64) complex128
}

// Func adapts an ordinary function to Evaluator.
type Func func(obs, src boundary.Node, k float64) complex128

// Evaluate calls f(obs, src, k).
func (f Func) Evaluate(obs, src boundary.Node, k float64) complex128 { return f(obs, src, k) }

// Tagger is implemented by evaluators whose values are fully determined by
// a printable configuration. Equal tags promise equal values; ok == false
// means the evaluator cannot vouch for that and must not be cached.
type Tagger interface {
	Tag() (tag string, ok bool)
}

// DoubleLayer is the Helmholtz double-layer kernel with an analytic jump
// value at coincident points. The zero value is not usable; construct with
// NewDoubleLayer. A DoubleLayer is immutable and safe for concurrent use.
type DoubleLayer struct {
	threshold float64
	jump      complex128
	hankel    HankelFunc
	hankelTag string
}

var (
	_ Evaluator = (*DoubleLayer)(nil)
	_ Tagger    = (*DoubleLayer)(nil)
)

// NewDoubleLayer returns a double-layer kernel configured by opts.
// Without options it uses DefaultThreshold, DefaultJump and Hankel1.
func NewDoubleLayer(opts ...Option) *DoubleLayer {
	o := gatherOptions(opts...)

	return &DoubleLayer{threshold: o.threshold, jump: o.jump, hankel: o.hankel, hankelTag: o.hankelTag}
}

// Tag describes the configuration by the exact bits of threshold and jump
// and the Hankel strategy name. It reports false after WithHankel.
func (d *DoubleLayer) Tag() (string, bool) {
	if d.hankelTag == "" {
		return "", false
	}

	return fmt.Sprintf("double-layer(threshold=%x,jump=%x/%x,hankel=%s)",
		math.Float64bits(d.threshold),
		math.Float64bits(real(d.jump)), math.Float64bits(imag(d.jump)),
		d.hankelTag), true
}

// Threshold returns the squared-separation cutoff in use.
func (d *DoubleLayer) Threshold() float64 { return d.threshold }

// Jump returns the value returned for coincident points.
func (d *DoubleLayer) Jump() complex128 { return d.jump }

// Evaluate returns Value(obs.Pos, obs.Normal, src.Pos, k).
func (d *DoubleLayer) Evaluate(obs, src boundary.Node, k float64) complex128 {
	return d.Value(obs.Pos, obs.Normal, src.Pos, k)
}

// Value evaluates the kernel for observation point x with normal n and
// source point y.
//
// Implementation:
//   - Stage 1: r² = |x − y|² via FMA; r² < threshold (or r² == 0) ⇒ return
//     the jump value.
//   - Stage 2: r = √r², dot = (x − y)·n via FMA, scale = dot / r.
//   - Stage 3: k == 0 ⇒ static limit −dot/(2π r²).
//   - Stage 4: return (−i·k/4)·H₁⁽¹⁾(k·r)·scale, i.e.
//     re = (k/4)·scale·Im H, im = −(k/4)·scale·Re H.
//
// Complexity: O(1), no allocation.
func (d *DoubleLayer) Value(x, n, y boundary.Vec2, k float64) complex128 {
	dx := x.X - y.X
	dy := x.Y - y.Y

	r2 := math.FMA(dx, dx, dy*dy)
	if r2 < d.threshold || r2 == 0 {
		return d.jump
	}

	r := math.Sqrt(r2)
	dot := math.FMA(dx, n.X, dy*n.Y)
	if k == 0 {
		return complex(-dot/(2*math.Pi*r2), 0)
	}
	scale := dot / r

	h := d.hankel(k * r)
	c := 0.25 * k * scale

	return complex(c*imag(h), -c*real(h))
}
