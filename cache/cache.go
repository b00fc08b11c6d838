// SPDX-License-Identifier: MIT

package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"strconv"

	"github.com/MatthewScargill/gobem/boundary"
	badger "github.com/dgraph-io/badger/v4"
)

// DefaultNamespace is used when Open is given an empty namespace.
const DefaultNamespace = "default"

// Store is a BadgerDB-backed σ_min cache.
type Store struct {
	db        *badger.DB
	namespace string
}

// Open opens (or creates) a store in dir. An empty dir keeps the store in
// memory. Entries written under one namespace are invisible to others.
func Open(dir, namespace string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, cacheErrorf(opOpen, err)
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Store{db: db, namespace: namespace}, nil
}

// Close releases the database. The store must not be used afterwards.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Get returns the σ_min cached under tag for the node set at k. A miss
// reports ok == false with a nil error.
func (s *Store) Get(tag string, nodes *boundary.Nodes, k float64) (sigma float64, ok bool, err error) {
	if s == nil || s.db == nil {
		return 0, false, cacheErrorf(opGet, ErrNilStore)
	}
	key := s.key(tag, nodes, k)

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return ErrCorrupt
			}
			sigma = math.Float64frombits(binary.BigEndian.Uint64(val))

			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, cacheErrorf(opGet, err)
	}

	return sigma, true, nil
}

// Put stores σ_min under tag for the node set at k, replacing any previous
// value.
func (s *Store) Put(tag string, nodes *boundary.Nodes, k, sigma float64) error {
	if s == nil || s.db == nil {
		return cacheErrorf(opPut, ErrNilStore)
	}
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, math.Float64bits(sigma))

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(tag, nodes, k), val)
	})
	if err != nil {
		return cacheErrorf(opPut, err)
	}

	return nil
}

// key is "sigma:<namespace>:<tag hash>:<fingerprint>:<k bits>".
func (s *Store) key(tag string, nodes *boundary.Nodes, k float64) []byte {
	th := sha256.Sum256([]byte(tag))

	return []byte("sigma:" + s.namespace + ":" + hex.EncodeToString(th[:8]) + ":" +
		Fingerprint(nodes) + ":" + strconv.FormatUint(math.Float64bits(k), 16))
}

// Fingerprint hashes the geometry of a node set: N followed by the bits of
// every position, normal and weight. Arclength parameters do not enter.
func Fingerprint(nodes *boundary.Nodes) string {
	h := sha256.New()
	n := nodes.Len()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
	if n > 0 {
		for _, col := range [][]float64{nodes.X, nodes.Y, nodes.NX, nodes.NY, nodes.W} {
			for _, v := range col {
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
				h.Write(buf[:])
			}
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
