// SPDX-License-Identifier: MIT

package spectrum

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Result labels for samplesTotal.
const (
	resultSuccess = "success"
	resultCached  = "cached"
	resultError   = "error"
)

var (
	// samplesTotal counts σ_min evaluations by result.
	samplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gobem_spectrum_samples_total",
		Help: "Total σ_min evaluations by result",
	}, []string{"result"})

	sampleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gobem_spectrum_sample_duration_seconds",
		Help:    "Assembly plus σ_min time per wavenumber",
		Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
	})

	refineIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gobem_spectrum_refine_iterations",
		Help:    "Golden-section steps per refinement",
		Buckets: []float64{5, 10, 20, 40, 80, 160},
	})

	resonancesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gobem_spectrum_resonances_total",
		Help: "Refined resonances reported",
	})
)

var (
	tracerOnce sync.Once
	tracer     trace.Tracer
)

// getTracer returns the package tracer, created on first use so that a
// provider installed at startup is picked up.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = otel.Tracer("github.com/MatthewScargill/gobem/spectrum")
	})

	return tracer
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
