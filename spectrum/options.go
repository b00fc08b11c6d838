// SPDX-License-Identifier: MIT

package spectrum

import (
	"math"

	"github.com/MatthewScargill/gobem/bem"
	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/matrix"
)

// Defaults for refinement.
const (
	// DefaultTolerance is the bracket width at which Refine stops.
	DefaultTolerance = 1e-8

	// DefaultMaxIter bounds the golden-section iterations of Refine.
	DefaultMaxIter = 100
)

const (
	panicToleranceInvalid = "spectrum: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "spectrum: WithMaxIter: n must be >= 1"
	panicCacheNil         = "spectrum: WithCache: nil Cache"
)

// Option configures scans and refinement.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	assemble []bem.Option
	tol      float64
	maxIter  int
	sigma    func(*matrix.Dense) (float64, error)
	method   string // σ_min method name entering the cache tag
	cache    Cache
	cacheTag string
}

// Cache stores σ_min per configuration tag, node set and wavenumber across
// scans. The tag identifies the assembly options and σ_min method; entries
// stored under one tag are never returned for another.
type Cache interface {
	Get(tag string, nodes *boundary.Nodes, k float64) (sigma float64, ok bool, err error)
	Put(tag string, nodes *boundary.Nodes, k, sigma float64) error
}

// σ_min method names.
const (
	methodSVD       = "svd"
	methodCirculant = "circulant"
)

// WithAssembleOptions forwards options to every bem.Assemble call.
func WithAssembleOptions(opts ...bem.Option) Option {
	return func(o *Options) { o.assemble = append(o.assemble, opts...) }
}

// WithCirculant computes σ_min with CirculantSmallestSingularValue instead
// of the SVD. Use it for rotationally symmetric node sets such as Circle.
func WithCirculant() Option {
	return func(o *Options) { o.sigma, o.method = CirculantSmallestSingularValue, methodCirculant }
}

// WithCache consults c before assembling and records every computed
// σ_min in it, under a tag derived from the assembly options (bem.Tag) and
// the σ_min method. When the kernel cannot be tagged the cache is bypassed.
// Cache errors abort the scan. Panics on nil.
func WithCache(c Cache) Option {
	if c == nil {
		panic(panicCacheNil)
	}

	return func(o *Options) { o.cache = c }
}

// WithTolerance sets the bracket width at which Refine stops.
// Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter bounds the number of golden-section steps. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, maxIter: DefaultMaxIter, sigma: SmallestSingularValue, method: methodSVD}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.cache != nil {
		tag, ok := bem.Tag(o.assemble...)
		if !ok {
			o.cache = nil
		} else {
			o.cacheTag = tag + ";sigma=" + o.method
		}
	}

	return o
}
