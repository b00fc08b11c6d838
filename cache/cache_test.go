// SPDX-License-Identifier: MIT

package cache_test

import (
	"testing"

	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openMem opens an in-memory store closed at test end.
func openMem(t *testing.T, namespace string) *cache.Store {
	t.Helper()
	s, err := cache.Open("", namespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// square builds an n-node unit square.
// tag stands in for the assembly configuration tag.
const tag = "double-layer;diagonal=-0.5;sigma=svd"

func square(t *testing.T, n int) *boundary.Nodes {
	t.Helper()
	ns, err := boundary.Square(1, n)
	require.NoError(t, err)

	return ns
}

// TestStore_RoundTrip checks miss, put and exact hit.
func TestStore_RoundTrip(t *testing.T) {
	s := openMem(t, "")
	nodes := square(t, 8)

	_, ok, err := s.Get(tag, nodes, 2.5)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(tag, nodes, 2.5, 0.123456789))
	got, ok, err := s.Get(tag, nodes, 2.5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.123456789, got)

	require.NoError(t, s.Put(tag, nodes, 2.5, 0.5))
	got, _, err = s.Get(tag, nodes, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got, "put replaces")
}

// TestStore_KeysSeparate checks that k, geometry, tag and namespace all
// split entries.
func TestStore_KeysSeparate(t *testing.T) {
	s := openMem(t, "a")
	other := openMem(t, "b")
	nodes := square(t, 8)
	require.NoError(t, s.Put(tag, nodes, 1, 0.1))

	_, ok, err := s.Get(tag, nodes, 1.0000000000000002)
	require.NoError(t, err)
	assert.False(t, ok, "nearby k")

	_, ok, err = s.Get(tag, square(t, 12), 1)
	require.NoError(t, err)
	assert.False(t, ok, "other geometry")

	_, ok, err = other.Get(tag, nodes, 1)
	require.NoError(t, err)
	assert.False(t, ok, "separate store")

	_, ok, err = s.Get(tag+";diagonal=0", nodes, 1)
	require.NoError(t, err)
	assert.False(t, ok, "other tag")

	require.NoError(t, s.Put("", nodes, 1, 0.7))
	got, ok, err := s.Get(tag, nodes, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.1, got, "empty tag is its own entry")
}

// TestStore_Persists reopens an on-disk store.
func TestStore_Persists(t *testing.T) {
	dir := t.TempDir()
	nodes := square(t, 8)

	s, err := cache.Open(dir, "disk")
	require.NoError(t, err)
	require.NoError(t, s.Put(tag, nodes, 3, 0.25))
	require.NoError(t, s.Close())

	s, err = cache.Open(dir, "disk")
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(tag, nodes, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.25, got)

	s2, err := cache.Open(t.TempDir(), "disk")
	require.NoError(t, err)
	defer s2.Close()
	_, ok, err = s2.Get(tag, nodes, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestStore_Closed checks nil and closed stores.
func TestStore_Closed(t *testing.T) {
	var nilStore *cache.Store
	_, _, err := nilStore.Get(tag, square(t, 4), 1)
	assert.ErrorIs(t, err, cache.ErrNilStore)
	assert.NoError(t, nilStore.Close())

	s, err := cache.Open("", "")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Put(tag, square(t, 4), 1, 1), cache.ErrNilStore)
}

// TestFingerprint checks stability and sensitivity.
func TestFingerprint(t *testing.T) {
	a := square(t, 8)
	b := square(t, 8)
	assert.Equal(t, cache.Fingerprint(a), cache.Fingerprint(b))
	assert.Len(t, cache.Fingerprint(a), 64)

	b.W[3] += 1e-15
	assert.NotEqual(t, cache.Fingerprint(a), cache.Fingerprint(b))
	assert.NotEqual(t, cache.Fingerprint(nil), cache.Fingerprint(a))
}
