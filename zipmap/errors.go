// SPDX-License-Identifier: MIT
// Package zipmap: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.

package zipmap

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when the input sequences disagree in
	// length. Validation happens before any element is read.
	ErrLengthMismatch = errors.New("zipmap: sequence length mismatch")

	// ErrNoSequences is returned when Apply receives zero input sequences;
	// a zip over nothing has no defined element count.
	ErrNoSequences = errors.New("zipmap: no input sequences")

	// ErrBadTarget is returned when WriteInto names an input index outside
	// the sequence slice.
	ErrBadTarget = errors.New("zipmap: write-into target out of range")
)

// zipErrorf wraps an underlying error with operation context at the package
// boundary; sentinels stay matchable via errors.Is.
func zipErrorf(op string, err error) error {
	return fmt.Errorf("zipmap.%s: %w", op, err)
}
