// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStore indicates a method call on a nil or closed Store.
	ErrNilStore = errors.New("cache: nil store")

	// ErrCorrupt indicates a stored value that is not 8 bytes long.
	ErrCorrupt = errors.New("cache: corrupt value")
)

const (
	opOpen = "Open"
	opGet  = "Get"
	opPut  = "Put"
)

func cacheErrorf(op string, err error) error {
	return fmt.Errorf("cache: %s: %w", op, err)
}
