// SPDX-License-Identifier: MIT
// Package extrema: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.

package extrema

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the scan length is zero (or negative):
	// an extremum over nothing is undefined. This behavior is an explicit
	// implementation decision — documented, not inferred.
	ErrEmptyInput = errors.New("extrema: empty input")
)

// extremaErrorf wraps an underlying error with operation context at the
// package boundary; sentinels stay matchable via errors.Is.
func extremaErrorf(op string, err error) error {
	return fmt.Errorf("extrema.%s: %w", op, err)
}
