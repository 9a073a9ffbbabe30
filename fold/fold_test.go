// SPDX-License-Identifier: MIT

package fold_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndkit/fold"
	"github.com/katalvlaran/ndkit/ndarray"
)

// opaque hides a concrete *Dense behind the bare NDArray surface, forcing
// the materialized resolution path inside the engine.
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

// add is the canonical commutative test operator.
func add(x, y float64) float64 { return x + y }

// TestReduce_SumMatchesDirectIteration pins the basic fold contract against
// a hand-rolled loop, on a rank-2 array.
func TestReduce_SumMatchesDirectIteration(t *testing.T) {
	t.Parallel()

	data := []float64{1, 2, 3, 4, 5, 6}
	a := mustDense(t, data, 2, 3)

	want := 0.0
	for _, v := range data {
		want += v
	}

	got, err := fold.Reduce(add, a)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestReduce_LeftToRight verifies fold order with a non-commutative op.
func TestReduce_LeftToRight(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []float64{1, 2, 3}, 3)

	// ((1-2)-3) = -4; any other association/order gives a different value.
	got, err := fold.Reduce(func(x, y float64) float64 { return x - y }, a)
	require.NoError(t, err)
	assert.Equal(t, -4.0, got)
}

// TestReduce_EmptySequence pins the zero-length boundary.
func TestReduce_EmptySequence(t *testing.T) {
	t.Parallel()

	empty, err := ndarray.NewDense[float64](0)
	require.NoError(t, err)

	_, err = fold.Reduce(add, empty)
	assert.ErrorIs(t, err, fold.ErrEmptySequence)
}

// TestReduce_NilArray verifies the centralized nil validation.
func TestReduce_NilArray(t *testing.T) {
	t.Parallel()

	_, err := fold.Reduce[float64](add, nil)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestReduceInit_EmptyYieldsInit: with an explicit seed the empty fold is
// defined and returns the seed unchanged.
func TestReduceInit_EmptyYieldsInit(t *testing.T) {
	t.Parallel()

	empty, err := ndarray.NewDense[float64](0)
	require.NoError(t, err)

	got, err := fold.ReduceInit(add, 42.0, empty)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

// TestReduce_WithMissing_SkipsAbsent: absent elements contribute nothing.
func TestReduce_WithMissing_SkipsAbsent(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := mustDense(t, []float64{1, nan, 3, nan}, 4)

	got, err := fold.Reduce(add, a, fold.WithMissing(math.IsNaN))
	require.NoError(t, err)
	assert.Equal(t, 4.0, got, "only present elements are summed")
}

// TestReduce_WithMissing_SinglePresent_OpNotInvoked pins the short-circuit
// rule: when exactly one operand is present the result is that one and the
// operator is NOT invoked.
func TestReduce_WithMissing_SinglePresent_OpNotInvoked(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := mustDense(t, []float64{nan, 5, nan}, 3)

	got, err := fold.Reduce(func(x, y float64) float64 {
		t.Fatalf("op must not be invoked for a single present element (got %v, %v)", x, y)
		return 0
	}, a, fold.WithMissing(math.IsNaN))
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

// TestReduce_WithMissing_AllAbsent: no present element and no seed errors.
func TestReduce_WithMissing_AllAbsent(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := mustDense(t, []float64{nan, nan}, 2)

	_, err := fold.Reduce(add, a, fold.WithMissing(math.IsNaN))
	assert.ErrorIs(t, err, fold.ErrEmptySequence)
}

// TestReduceMaybe_AllAbsentIsAValue: the Maybe form turns all-absent into
// None instead of an error.
func TestReduceMaybe_AllAbsentIsAValue(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := mustDense(t, []float64{nan, nan}, 2)

	m, err := fold.ReduceMaybe(add, a, fold.WithMissing(math.IsNaN))
	require.NoError(t, err)
	assert.False(t, m.Present())
	assert.Equal(t, -1.0, m.OrElse(-1), "OrElse supplies the fallback")
}

// TestReduceMaybe_Present returns Some for a non-empty fold.
func TestReduceMaybe_Present(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []float64{2, 3}, 2)

	m, err := fold.ReduceMaybe(add, a)
	require.NoError(t, err)
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
}

// TestReduceKeyed_ProjectsElementType folds int elements through a float64
// key projection.
func TestReduceKeyed_ProjectsElementType(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []int{1, 2, 3}, 3)

	got, err := fold.ReduceKeyed(func(x, y float64) float64 { return x + y },
		func(e int) float64 { return float64(e) / 2 }, a)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

// TestReduce_OverView folds a borrowed window only.
func TestReduce_OverView(t *testing.T) {
	t.Parallel()

	parent := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 6)
	w, err := parent.View(2, 3) // elements 3, 4, 5
	require.NoError(t, err)

	got, err := fold.Reduce(add, w)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)
}

// TestReduce_MaterializedPathMatchesAliasing pins resolution equivalence
// from the engine's point of view.
func TestReduce_MaterializedPathMatchesAliasing(t *testing.T) {
	t.Parallel()

	a := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	fast, err := fold.Reduce(add, a)
	require.NoError(t, err)
	slow, err := fold.Reduce[float64](add, opaque[float64]{a})
	require.NoError(t, err)
	assert.Equal(t, fast, slow)
}
