// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"math/cmplx"
)

// Defaults (single source of truth).
const (
	// DefaultThreshold is the squared-separation cutoff below which two
	// points are treated as coincident: (1e-8)².
	DefaultThreshold = 1e-16

	// DefaultJump is the analytic limit of the double-layer kernel as the
	// points coincide.
	DefaultJump complex128 = -0.5 + 0i
)

const (
	panicThresholdInvalid = "kernel: WithThreshold: r2 must be finite and >= 0"
	panicJumpInvalid      = "kernel: WithJump: value must be finite"
	panicHankelNil        = "kernel: WithHankel: nil HankelFunc"
)

// Option configures a DoubleLayer at construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved DoubleLayer configuration.
type Options struct {
	threshold float64    // squared separation; DefaultThreshold
	jump      complex128 // coincident value; DefaultJump
	hankel    HankelFunc // H₁⁽¹⁾ strategy; Hankel1
	hankelTag string     // name of hankel for Tag; empty when unknown
}

// hankel1Tag names the default Hankel strategy in tags.
const hankel1Tag = "J1+iY1"

// WithThreshold sets the squared-separation cutoff r2 of the singular limit.
// r2 = 0 disables the shortcut except at exact coincidence.
// Panics if r2 is negative or not finite.
func WithThreshold(r2 float64) Option {
	if math.IsNaN(r2) || math.IsInf(r2, 0) || r2 < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = r2 }
}

// WithJump sets the value returned for coincident points.
// Panics if v has a NaN or infinite component.
func WithJump(v complex128) Option {
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		panic(panicJumpInvalid)
	}

	return func(o *Options) { o.jump = v }
}

// WithHankel replaces the H₁⁽¹⁾ evaluation strategy. An arbitrary function
// cannot be named, so the resulting kernel reports no Tag. Panics on nil.
func WithHankel(h HankelFunc) Option {
	if h == nil {
		panic(panicHankelNil)
	}

	return func(o *Options) { o.hankel, o.hankelTag = h, "" }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		threshold: DefaultThreshold,
		jump:      DefaultJump,
		hankel:    Hankel1,
		hankelTag: hankel1Tag,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
