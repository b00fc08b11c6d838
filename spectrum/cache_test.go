// SPDX-License-Identifier: MIT

package spectrum_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/MatthewScargill/gobem/bem"
	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/cache"
	"github.com/MatthewScargill/gobem/kernel"
	"github.com/MatthewScargill/gobem/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingKernel wraps the default kernel, counts evaluations and keeps
// its tag so the cache stays enabled.
type countingKernel struct {
	dl    *kernel.DoubleLayer
	calls *atomic.Int64
}

func newCountingKernel(calls *atomic.Int64) countingKernel {
	return countingKernel{dl: kernel.NewDoubleLayer(), calls: calls}
}

func (c countingKernel) Evaluate(obs, src boundary.Node, k float64) complex128 {
	c.calls.Add(1)

	return c.dl.Evaluate(obs, src, k)
}

func (c countingKernel) Tag() (string, bool) { return c.dl.Tag() }

// TestScan_WithCacheSkipsAssembly scans twice through a badger store and
// checks that the second pass assembles nothing.
func TestScan_WithCacheSkipsAssembly(t *testing.T) {
	store, err := cache.Open("", "test")
	require.NoError(t, err)
	defer store.Close()

	var calls atomic.Int64
	nodes := mustCircle(t, 1, 16)
	ks := []float64{1, 2, 3}
	opts := []spectrum.Option{
		spectrum.WithCache(store),
		spectrum.WithAssembleOptions(bem.WithKernel(newCountingKernel(&calls))),
	}

	first, err := spectrum.Scan(context.Background(), nodes, ks, opts...)
	require.NoError(t, err)
	assert.Equal(t, int64(3*16*16), calls.Load())

	second, err := spectrum.Scan(context.Background(), nodes, ks, opts...)
	require.NoError(t, err)
	assert.Equal(t, int64(3*16*16), calls.Load(), "second scan is served from the cache")
	assert.Equal(t, first, second)

	plain, err := spectrum.Scan(context.Background(), nodes, ks)
	require.NoError(t, err)
	assert.Equal(t, plain, first)
}

// TestScan_CacheSeparatesAssemblyOptions shares one store between a default
// scan and a scan with a different diagonal; the second must not be served
// the first one's values.
func TestScan_CacheSeparatesAssemblyOptions(t *testing.T) {
	store, err := cache.Open("", "test")
	require.NoError(t, err)
	defer store.Close()

	nodes := mustCircle(t, 1, 16)
	ks := []float64{1.5, 2.4}

	def, err := spectrum.Scan(context.Background(), nodes, ks, spectrum.WithCache(store))
	require.NoError(t, err)

	zeroDiag := spectrum.WithAssembleOptions(bem.WithDiagonal(0))
	cached, err := spectrum.Scan(context.Background(), nodes, ks, spectrum.WithCache(store), zeroDiag)
	require.NoError(t, err)
	plain, err := spectrum.Scan(context.Background(), nodes, ks, zeroDiag)
	require.NoError(t, err)

	assert.Equal(t, plain, cached)
	assert.NotEqual(t, def, cached)

	circ, err := spectrum.Scan(context.Background(), nodes, ks,
		spectrum.WithCache(store), spectrum.WithCirculant())
	require.NoError(t, err)
	plainCirc, err := spectrum.Scan(context.Background(), nodes, ks, spectrum.WithCirculant())
	require.NoError(t, err)
	assert.Equal(t, plainCirc, circ, "σ_min method is part of the key")
}

// TestScan_UntaggedKernelBypassesCache checks that a kernel with no tag is
// assembled every time and never written to the store.
func TestScan_UntaggedKernelBypassesCache(t *testing.T) {
	store, err := cache.Open("", "test")
	require.NoError(t, err)
	defer store.Close()

	var calls atomic.Int64
	dl := kernel.NewDoubleLayer()
	untagged := kernel.Func(func(obs, src boundary.Node, k float64) complex128 {
		calls.Add(1)

		return dl.Evaluate(obs, src, k)
	})
	nodes := mustCircle(t, 1, 8)
	opts := []spectrum.Option{
		spectrum.WithCache(store),
		spectrum.WithAssembleOptions(bem.WithKernel(untagged)),
	}

	for range 2 {
		_, err = spectrum.Scan(context.Background(), nodes, []float64{2}, opts...)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(2*8*8), calls.Load())

	tag, ok := bem.Tag()
	require.True(t, ok)
	for _, tg := range []string{"", tag + ";sigma=svd"} {
		_, hit, err := store.Get(tg, nodes, 2)
		require.NoError(t, err)
		assert.False(t, hit)
	}
}

// failingCache errors on every lookup.
type failingCache struct{}

var errCacheDown = errors.New("cache down")

func (failingCache) Get(string, *boundary.Nodes, float64) (float64, bool, error) {
	return 0, false, errCacheDown
}

func (failingCache) Put(string, *boundary.Nodes, float64, float64) error { return nil }

// TestScan_CacheErrorAborts checks that cache failures surface.
func TestScan_CacheErrorAborts(t *testing.T) {
	_, err := spectrum.Scan(context.Background(), mustCircle(t, 1, 8), []float64{1},
		spectrum.WithCache(failingCache{}))
	assert.ErrorIs(t, err, errCacheDown)

	assert.Panics(t, func() { spectrum.WithCache(nil) })
}
