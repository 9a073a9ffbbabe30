// SPDX-License-Identifier: MIT
// Package fold: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.
// No operation panics on user-triggered error conditions.

package fold

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when a fold has no defined result: the
	// sequence is empty, or every element is absent under WithMissing, and
	// no explicit initial value was supplied.
	ErrEmptySequence = errors.New("fold: empty sequence")
)

// foldErrorf wraps an underlying error with operation context at the
// package boundary; sentinels stay matchable via errors.Is.
func foldErrorf(op string, err error) error {
	return fmt.Errorf("fold.%s: %w", op, err)
}
