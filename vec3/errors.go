// SPDX-License-Identifier: MIT
// Package vec3: sentinel error set.
// Every failure in this package is a programming error surfaced immediately
// (fail-fast). Public accessors return these sentinels wrapped with a call-site
// tag; tests MUST match them via errors.Is.

package vec3

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a component index is outside 0..2.
	ErrIndexOutOfRange = errors.New("vec3: index out of range")

	// ErrInvalidStorageState is returned on use of released indirect storage,
	// on a second Release, and by allocators asked to free a block they do not own.
	ErrInvalidStorageState = errors.New("vec3: invalid storage state")

	// ErrNilExpr is returned when a nil operand takes part in an expression
	// or a nil destination is assigned to.
	ErrNilExpr = errors.New("vec3: nil expression")
)

// vecErrorf tags err with the operation that detected it.
func vecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf tags an index violation with the offending index.
func indexErrorf(tag string, i int) error {
	return fmt.Errorf("%s(%d): %w", tag, i, ErrIndexOutOfRange)
}
