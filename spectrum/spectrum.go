// SPDX-License-Identifier: MIT

package spectrum

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/MatthewScargill/gobem/bem"
	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/matrix"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sample is one point of a resonance scan.
type Sample struct {
	K        float64 // wavenumber
	SigmaMin float64 // smallest singular value of A(K)
}

// SmallestSingularValue returns σ_min of a.
//
// Implementation:
//   - Stage 1: reject nil input and non-finite entries.
//   - Stage 2: factorize the real embedding [[Re, −Im], [Im, Re]] with
//     gonum's SVD (values only); the last value is σ_min.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrSVDFailed.
// Complexity: O(N³) on the 2N×2N embedding.
func SmallestSingularValue(a *matrix.Dense) (float64, error) {
	if err := matrix.ValidateFinite(a); err != nil {
		return 0, spectrumErrorf(opSigmaMin, err)
	}
	emb, err := matrix.RealEmbedding(a)
	if err != nil {
		return 0, spectrumErrorf(opSigmaMin, err)
	}

	var svd mat.SVD
	if !svd.Factorize(emb, mat.SVDNone) {
		return 0, spectrumErrorf(opSigmaMin, ErrSVDFailed)
	}
	vals := svd.Values(nil)

	return vals[len(vals)-1], nil
}

// Wavenumbers returns m evenly spaced wavenumbers from kmin to kmax
// inclusive. m == 1 requires kmin == kmax.
//
// Errors: ErrBadRange on non-finite bounds, kmin < 0, kmax < kmin, m < 1,
// or m == 1 with kmin != kmax.
func Wavenumbers(kmin, kmax float64, m int) ([]float64, error) {
	if math.IsNaN(kmin) || math.IsNaN(kmax) || math.IsInf(kmin, 0) || math.IsInf(kmax, 0) ||
		kmin < 0 || kmax < kmin || m < 1 {
		return nil, spectrumErrorf(opWavenumbers, ErrBadRange)
	}
	if m == 1 {
		if kmin != kmax {
			return nil, spectrumErrorf(opWavenumbers, ErrBadRange)
		}

		return []float64{kmin}, nil
	}

	return floats.Span(make([]float64, m), kmin, kmax), nil
}

// Scan assembles A(k) once per wavenumber and records σ_min, in input
// order. The node set is reused across wavenumbers. ctx is checked between
// wavenumbers; a single assembly is never interrupted.
//
// Scanning the same ks on the same node set twice yields identical samples.
func Scan(ctx context.Context, nodes *boundary.Nodes, ks []float64, opts ...Option) (out []Sample, err error) {
	ctx, span := getTracer().Start(ctx, "spectrum.Scan",
		trace.WithAttributes(attribute.Int("n", nodes.Len()), attribute.Int("samples", len(ks))))
	defer func() { endSpan(span, err) }()

	if err := nodes.Validate(); err != nil {
		return nil, spectrumErrorf(opScan, err)
	}
	o := gatherOptions(opts...)

	out = make([]Sample, 0, len(ks))
	for _, k := range ks {
		if err := ctx.Err(); err != nil {
			return nil, spectrumErrorf(opScan, err)
		}
		s, err := evaluate(k, nodes, &o)
		if err != nil {
			return nil, spectrumErrorf(opScan, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Minima returns the samples that are strict local minima of σ_min (lower
// than both neighbours) with σ_min < threshold. Endpoints never qualify.
func Minima(samples []Sample, threshold float64) []Sample {
	idx := minimaIndices(samples, threshold)
	out := make([]Sample, len(idx))
	for i, j := range idx {
		out[i] = samples[j]
	}

	return out
}

// minimaIndices implements Minima on indices.
func minimaIndices(samples []Sample, threshold float64) []int {
	var idx []int
	for i := 1; i+1 < len(samples); i++ {
		s := samples[i].SigmaMin
		if s < threshold && s < samples[i-1].SigmaMin && s < samples[i+1].SigmaMin {
			idx = append(idx, i)
		}
	}

	return idx
}

// invPhi is 1/φ, the golden-section ratio.
var invPhi = (math.Sqrt(5) - 1) / 2

// Refine locates the minimum of σ_min(k) on [lo, hi] by golden-section
// search, assuming a single minimum in the bracket. It stops once the
// bracket is narrower than the tolerance or after the iteration limit and
// returns the best sample evaluated.
//
// Errors: ErrBadRange unless 0 ≤ lo < hi (finite); assembly and SVD errors;
// ctx errors between evaluations.
func Refine(ctx context.Context, nodes *boundary.Nodes, lo, hi float64, opts ...Option) (best Sample, err error) {
	ctx, span := getTracer().Start(ctx, "spectrum.Refine",
		trace.WithAttributes(attribute.Float64("lo", lo), attribute.Float64("hi", hi)))
	defer func() {
		span.SetAttributes(attribute.Float64("k", best.K), attribute.Float64("sigma_min", best.SigmaMin))
		endSpan(span, err)
	}()

	if math.IsNaN(lo) || math.IsInf(hi, 0) || !(lo >= 0) || !(hi > lo) {
		return Sample{}, spectrumErrorf(opRefine, ErrBadRange)
	}
	if err := nodes.Validate(); err != nil {
		return Sample{}, spectrumErrorf(opRefine, err)
	}
	o := gatherOptions(opts...)

	eval := func(k float64) (Sample, error) {
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}

		return evaluate(k, nodes, &o)
	}

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	sc, err := eval(c)
	if err != nil {
		return Sample{}, spectrumErrorf(opRefine, err)
	}
	sd, err := eval(d)
	if err != nil {
		return Sample{}, spectrumErrorf(opRefine, err)
	}

	iter := 0
	defer func() { refineIterations.Observe(float64(iter)) }()
	for ; iter < o.maxIter && b-a > o.tol; iter++ {
		if sc.SigmaMin < sd.SigmaMin {
			b, d, sd = d, c, sc
			c = b - invPhi*(b-a)
			if sc, err = eval(c); err != nil {
				return Sample{}, spectrumErrorf(opRefine, err)
			}
		} else {
			a, c, sc = c, d, sd
			d = a + invPhi*(b-a)
			if sd, err = eval(d); err != nil {
				return Sample{}, spectrumErrorf(opRefine, err)
			}
		}
	}

	if sc.SigmaMin < sd.SigmaMin {
		return sc, nil
	}

	return sd, nil
}

// Resonances scans ks, keeps the local minima of σ_min below threshold and
// refines each one inside the bracket formed by its scan neighbours. ks may
// be ascending or descending. Results are in increasing k.
func Resonances(ctx context.Context, nodes *boundary.Nodes, ks []float64, threshold float64, opts ...Option) (res []Sample, err error) {
	ctx, span := getTracer().Start(ctx, "spectrum.Resonances",
		trace.WithAttributes(attribute.Float64("threshold", threshold)))
	defer func() {
		span.SetAttributes(attribute.Int("resonances", len(res)))
		endSpan(span, err)
	}()

	samples, err := Scan(ctx, nodes, ks, opts...)
	if err != nil {
		return nil, spectrumErrorf(opResonances, err)
	}
	res, err = RefineMinima(ctx, nodes, samples, threshold, opts...)
	if err != nil {
		return nil, spectrumErrorf(opResonances, err)
	}

	return res, nil
}

// RefineMinima refines every Minima entry of an existing scan between its
// two scan neighbours, whichever order they were sampled in. Results are
// sorted by increasing k.
func RefineMinima(ctx context.Context, nodes *boundary.Nodes, samples []Sample, threshold float64, opts ...Option) ([]Sample, error) {
	idx := minimaIndices(samples, threshold)
	out := make([]Sample, 0, len(idx))
	for _, i := range idx {
		lo := math.Min(samples[i-1].K, samples[i+1].K)
		hi := math.Max(samples[i-1].K, samples[i+1].K)
		s, err := Refine(ctx, nodes, lo, hi, opts...)
		if err != nil {
			return nil, spectrumErrorf(opRefineMinima, err)
		}
		out = append(out, s)
		resonancesTotal.Inc()
	}
	sort.Slice(out, func(a, b int) bool { return out[a].K < out[b].K })

	return out, nil
}

// evaluate assembles A(k) and returns its σ_min, going through the cache
// when one is configured.
func evaluate(k float64, nodes *boundary.Nodes, o *Options) (s Sample, err error) {
	start := time.Now()
	result := resultSuccess
	defer func() {
		if err != nil {
			result = resultError
		}
		samplesTotal.WithLabelValues(result).Inc()
		if result != resultCached {
			sampleDuration.Observe(time.Since(start).Seconds())
		}
	}()

	if o.cache != nil {
		sigma, ok, err := o.cache.Get(o.cacheTag, nodes, k)
		if err != nil {
			return Sample{}, err
		}
		if ok {
			result = resultCached

			return Sample{K: k, SigmaMin: sigma}, nil
		}
	}

	a, err := bem.Assemble(k, nodes, o.assemble...)
	if err != nil {
		return Sample{}, err
	}
	sigma, err := o.sigma(a)
	if err != nil {
		return Sample{}, err
	}
	if o.cache != nil {
		if err := o.cache.Put(o.cacheTag, nodes, k, sigma); err != nil {
			return Sample{}, err
		}
	}

	return Sample{K: k, SigmaMin: sigma}, nil
}
