// SPDX-License-Identifier: MIT
// Package elementwise: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.

package elementwise

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the two inputs of a binary combiner
	// disagree in shape. Validation happens before any element is read.
	ErrShapeMismatch = errors.New("elementwise: shape mismatch")

	// ErrArityMismatch is returned by MapN when the mapped function yields
	// a number of values different from the declared trailing dimension.
	ErrArityMismatch = errors.New("elementwise: arity mismatch")
)

// ewErrorf wraps an underlying error with operation context at the package
// boundary; sentinels stay matchable via errors.Is.
func ewErrorf(op string, err error) error {
	return fmt.Errorf("elementwise.%s: %w", op, err)
}
