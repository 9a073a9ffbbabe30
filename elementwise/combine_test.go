// SPDX-License-Identifier: MIT

package elementwise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndkit/elementwise"
	"github.com/katalvlaran/ndkit/ndarray"
)

// opaque hides a concrete *Dense behind the bare NDArray surface, forcing
// the materialized resolution path for that input.
type opaque[T any] struct{ a ndarray.NDArray[T] }

func (o opaque[T]) Shape() ndarray.Shape { return o.a.Shape() }
func (o opaque[T]) Len() int             { return o.a.Len() }
func (o opaque[T]) AtFlat(i int) T       { return o.a.AtFlat(i) }

// mustDense builds an owned array or fails the test.
func mustDense[T any](t *testing.T, data []T, shape ...int) *ndarray.Dense[T] {
	t.Helper()
	a, err := ndarray.FromSlice(data, shape...)
	require.NoError(t, err)

	return a
}

// TestCombine_Basic applies an operator across two 2x2 inputs.
func TestCombine_Basic(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []int{10, 20, 30, 40}, 2, 2)

	out, err := elementwise.Combine(func(x, y int) int { return x + y }, a, b)
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(ndarray.Shape{2, 2}))
	for i, want := range []int{11, 22, 33, 44} {
		assert.Equal(t, want, out.AtFlat(i), "flat index %d", i)
	}
}

// TestCombine_ResultTypeIsCallerChosen: integer inputs combining into a
// float64 result.
func TestCombine_ResultTypeIsCallerChosen(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []int{1, 3}, 2)
	b := mustDense(t, []int{2, 4}, 2)

	out, err := elementwise.Combine(func(x, y int) float64 {
		return float64(x) / float64(y)
	}, a, b)
	require.NoError(t, err)

	assert.Equal(t, 0.5, out.AtFlat(0))
	assert.Equal(t, 0.75, out.AtFlat(1))
}

// TestCombine_ShapeMismatch pins the precondition: same rank, different
// dims; same element count, different rank — both must fail.
func TestCombine_ShapeMismatch(t *testing.T) {
	t.Parallel()

	op := func(x, y int) int { return x + y }
	a := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	c := mustDense(t, []int{1, 2, 3, 4}, 4)

	_, err := elementwise.Combine(op, a, b)
	assert.ErrorIs(t, err, elementwise.ErrShapeMismatch)

	_, err = elementwise.Combine(op, a, c)
	assert.ErrorIs(t, err, elementwise.ErrShapeMismatch, "equal count, different rank")
}

// TestCombine_NilInputs covers the presence validation of both operands.
func TestCombine_NilInputs(t *testing.T) {
	t.Parallel()

	op := func(x, y int) int { return x + y }
	a := mustDense(t, []int{1}, 1)

	_, err := elementwise.Combine[int, int, int](op, nil, a)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)

	_, err = elementwise.Combine[int, int, int](op, a, nil)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestCombine_NoAliasing: the result must not share storage with either
// input, even when both resolve through the aliasing path.
func TestCombine_NoAliasing(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []float64{1, 2}, 2)
	b := mustDense(t, []float64{3, 4}, 2)

	out, err := elementwise.Combine(func(x, y float64) float64 { return x + y }, a, b)
	require.NoError(t, err)

	out.SetFlat(0, 99)
	assert.Equal(t, 1.0, a.AtFlat(0))
	assert.Equal(t, 3.0, b.AtFlat(0))
}

// TestCombine_MixedResolutionPaths: one aliasing input, one materialized —
// the paths need not agree.
func TestCombine_MixedResolutionPaths(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []int{1, 2, 3}, 3)
	b := mustDense(t, []int{10, 20, 30}, 3)

	out, err := elementwise.Combine[int, int, int](func(x, y int) int { return x + y },
		a, opaque[int]{b})
	require.NoError(t, err)

	for i, want := range []int{11, 22, 33} {
		assert.Equal(t, want, out.AtFlat(i))
	}
}

// TestCombine_ViewInputs: borrowed windows combine like any other array and
// the inputs stay untouched.
func TestCombine_ViewInputs(t *testing.T) {
	t.Parallel()

	parent := mustDense(t, []float64{0, 1, 2, 3, 4, 5}, 6)
	va, err := parent.View(0, 3)
	require.NoError(t, err)
	vb, err := parent.View(3, 3)
	require.NoError(t, err)

	out, err := elementwise.Combine(func(x, y float64) float64 { return x + y }, va, vb)
	require.NoError(t, err)

	// [0+3, 1+4, 2+5]
	for i, want := range []float64{3, 5, 7} {
		assert.Equal(t, want, out.AtFlat(i))
	}
	// The shared parent buffer is untouched.
	for i, want := range []float64{0, 1, 2, 3, 4, 5} {
		assert.Equal(t, want, parent.AtFlat(i))
	}
}

// TestMap_Basic covers the unary kernel with a type-changing operator.
func TestMap_Basic(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []int{1, 2, 3}, 3)

	out, err := elementwise.Map(func(x int) float64 { return float64(x) * 0.5 }, a)
	require.NoError(t, err)

	for i, want := range []float64{0.5, 1, 1.5} {
		assert.Equal(t, want, out.AtFlat(i))
	}
}

// TestMap_Nil covers presence validation.
func TestMap_Nil(t *testing.T) {
	t.Parallel()

	_, err := elementwise.Map[int, int](func(x int) int { return x }, nil)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestCombine_EmptyArrays: zero-element inputs produce a zero-element
// result without error.
func TestCombine_EmptyArrays(t *testing.T) {
	t.Parallel()

	a, err := ndarray.NewDense[int](0, 2)
	require.NoError(t, err)
	b, err := ndarray.NewDense[int](0, 2)
	require.NoError(t, err)

	out, err := elementwise.Combine(func(x, y int) int { return x + y }, a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}
