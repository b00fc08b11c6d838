// SPDX-License-Identifier: MIT

package bem

import (
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"github.com/MatthewScargill/gobem/kernel"
)

// DefaultDiagonal is the jump term added to every diagonal entry.
const DefaultDiagonal complex128 = -0.5 + 0i

const (
	panicKernelNil       = "bem: WithKernel: nil Evaluator"
	panicWorkersInvalid  = "bem: WithWorkers: n must be >= 1"
	panicDiagonalInvalid = "bem: WithDiagonal: value must be finite"
)

// defaultKernel is shared by all assemblies; DoubleLayer is immutable.
var defaultKernel = kernel.NewDoubleLayer()

// Option configures an assembly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved assembly configuration.
type Options struct {
	kernel   kernel.Evaluator // kernel.NewDoubleLayer()
	workers  int              // runtime.GOMAXPROCS(0)
	diagonal complex128       // DefaultDiagonal
}

// WithKernel substitutes the kernel evaluator. ev must be safe for
// concurrent use. Panics on nil.
func WithKernel(ev kernel.Evaluator) Option {
	if ev == nil {
		panic(panicKernelNil)
	}

	return func(o *Options) { o.kernel = ev }
}

// WithWorkers fixes the size of the row worker pool. n = 1 assembles
// sequentially on the caller's goroutine schedule. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithDiagonal replaces the jump term added to diagonal entries.
// Panics on a NaN or infinite value.
func WithDiagonal(v complex128) Option {
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		panic(panicDiagonalInvalid)
	}

	return func(o *Options) { o.diagonal = v }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		kernel:   defaultKernel,
		workers:  runtime.GOMAXPROCS(0),
		diagonal: DefaultDiagonal,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Tag describes the values an assembly with opts produces: the kernel's
// Tag and the exact bits of the diagonal term. Worker count does not
// enter, since it never changes the result. ok is false when the kernel
// does not implement kernel.Tagger or declines to tag itself.
func Tag(opts ...Option) (tag string, ok bool) {
	o := gatherOptions(opts...)
	t, isTagger := o.kernel.(kernel.Tagger)
	if !isTagger {
		return "", false
	}
	kt, ok := t.Tag()
	if !ok {
		return "", false
	}

	return fmt.Sprintf("%s;diagonal=%x/%x", kt,
		math.Float64bits(real(o.diagonal)), math.Float64bits(imag(o.diagonal))), true
}
