package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndkit/vector"
)

// TestDot_Basic verifies the inner product on a known pair.
func TestDot_Basic(t *testing.T) {
	t.Parallel()

	s, err := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, s)
}

// TestDot_Empty: the empty inner product is zero.
func TestDot_Empty(t *testing.T) {
	t.Parallel()

	s, err := vector.Dot(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
}

// TestDot_LengthMismatch pins the precondition.
func TestDot_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := vector.Dot([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)
}

// TestOuter_Basic verifies shape and entries of a 2x3 outer product.
func TestOuter_Basic(t *testing.T) {
	t.Parallel()

	out, err := vector.Outer([]float64{1, 2}, []float64{3, 4, 5})
	require.NoError(t, err)

	require.Equal(t, 6, out.Len())
	want := []float64{3, 4, 5, 6, 8, 10} // row-major [x0*y, x1*y]
	for i, w := range want {
		assert.Equal(t, w, out.AtFlat(i), "flat index %d", i)
	}
}

// TestOuter_EmptyOperand: rank stays 2 with a zero-sized dimension.
func TestOuter_EmptyOperand(t *testing.T) {
	t.Parallel()

	out, err := vector.Outer(nil, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}
