// SPDX-License-Identifier: MIT

// Package cache persists σ_min samples in BadgerDB so that repeated scans
// of the same boundary skip assembly and factorization.
//
// Entries are keyed by a namespace, a hash of the configuration tag
// supplied by the caller (spectrum derives it from the assembly options),
// a SHA-256 fingerprint of the node set (positions, normals and weights)
// and the exact bits of k. The cache has no other invalidation. Values are the 8-byte big-endian bits of σ_min.
//
// A Store satisfies spectrum.Cache and is safe for concurrent use.
package cache
