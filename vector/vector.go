// Package vector: dot and outer products over flat float64 sequences.

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndkit/ndarray"
)

// ErrLengthMismatch indicates that the two operand vectors disagree in
// length where agreement is required.
var ErrLengthMismatch = errors.New("vector: length mismatch")

// vectorErrorf wraps an underlying error with operation context.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// Dot returns the inner product Σ x[i]*y[i].
// Stage 1 (Validate): lengths must agree.
// Stage 2 (Execute): single fixed-order accumulation pass.
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	// Validate operand agreement before touching elements.
	if len(x) != len(y) {
		return 0, vectorErrorf("Dot", ErrLengthMismatch)
	}

	s := 0.0
	for i := range x { // deterministic accumulation order
		s += x[i] * y[i]
	}

	return s, nil
}

// Outer returns the outer product as a len(x)×len(y) array:
// out[i,j] = x[i]*y[j].
// Complexity: O(len(x)*len(y)) time and memory.
func Outer(x, y []float64) (*ndarray.Dense[float64], error) {
	out, err := ndarray.NewDense[float64](len(x), len(y))
	if err != nil {
		return nil, vectorErrorf("Outer", err)
	}

	// Fixed i→j loops over the flat row-major layout.
	cols := len(y)
	for i := range x {
		base := i * cols // row base offset
		for j := range y {
			out.SetFlat(base+j, x[i]*y[j])
		}
	}

	return out, nil
}
