// SPDX-License-Identifier: MIT
// Package: elementwise
//
// Purpose:
//   - Provide the arithmetic specializations as thin call-sites of Combine
//     and Map. The default result element type is float64 (double
//     precision); callers wanting another result type use Combine/Map with
//     their own operator — that IS the override path.
//
// Notes:
//   - Div and Recip follow IEEE-754: division by zero yields ±Inf, 0/0
//     yields NaN. No NaN policy is imposed here; pair with fold.WithMissing
//     downstream when NaN should read as absent.

package elementwise

import "github.com/katalvlaran/ndkit/ndarray"

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opDiv           = "Div"
	opAddScalar     = "AddScalar"
	opScale         = "Scale"
	opRecip         = "Recip"
	opNeg           = "Neg"
	opSubFromScalar = "SubFromScalar"
)

// Add returns a+b elementwise as float64.
// Errors: ErrNilArray, ErrShapeMismatch. Complexity: O(n).
func Add[A ndarray.Number](a, b ndarray.NDArray[A]) (*ndarray.Dense[float64], error) {
	out, err := Combine(func(x, y A) float64 { return float64(x) + float64(y) }, a, b)
	if err != nil {
		return nil, ewErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns a-b elementwise as float64.
// Errors: ErrNilArray, ErrShapeMismatch. Complexity: O(n).
func Sub[A ndarray.Number](a, b ndarray.NDArray[A]) (*ndarray.Dense[float64], error) {
	out, err := Combine(func(x, y A) float64 { return float64(x) - float64(y) }, a, b)
	if err != nil {
		return nil, ewErrorf(opSub, err)
	}

	return out, nil
}

// Mul returns a*b elementwise as float64.
// Errors: ErrNilArray, ErrShapeMismatch. Complexity: O(n).
func Mul[A ndarray.Number](a, b ndarray.NDArray[A]) (*ndarray.Dense[float64], error) {
	out, err := Combine(func(x, y A) float64 { return float64(x) * float64(y) }, a, b)
	if err != nil {
		return nil, ewErrorf(opMul, err)
	}

	return out, nil
}

// Div returns a/b elementwise as float64 (IEEE-754 semantics on zero
// divisors).
// Errors: ErrNilArray, ErrShapeMismatch. Complexity: O(n).
func Div[A ndarray.Number](a, b ndarray.NDArray[A]) (*ndarray.Dense[float64], error) {
	out, err := Combine(func(x, y A) float64 { return float64(x) / float64(y) }, a, b)
	if err != nil {
		return nil, ewErrorf(opDiv, err)
	}

	return out, nil
}

// AddScalar returns x+k for every element as float64 (scalar broadcast).
// Errors: ErrNilArray. Complexity: O(n).
func AddScalar[A ndarray.Number](a ndarray.NDArray[A], k float64) (*ndarray.Dense[float64], error) {
	out, err := Map(func(x A) float64 { return float64(x) + k }, a)
	if err != nil {
		return nil, ewErrorf(opAddScalar, err)
	}

	return out, nil
}

// Scale returns x*k for every element as float64 (scalar broadcast).
// Errors: ErrNilArray. Complexity: O(n).
func Scale[A ndarray.Number](a ndarray.NDArray[A], k float64) (*ndarray.Dense[float64], error) {
	out, err := Map(func(x A) float64 { return float64(x) * k }, a)
	if err != nil {
		return nil, ewErrorf(opScale, err)
	}

	return out, nil
}

// Recip returns k/x for every element as float64; pass k=1 for the plain
// reciprocal. IEEE-754 semantics on zero elements.
// Errors: ErrNilArray. Complexity: O(n).
func Recip[A ndarray.Number](a ndarray.NDArray[A], k float64) (*ndarray.Dense[float64], error) {
	out, err := Map(func(x A) float64 { return k / float64(x) }, a)
	if err != nil {
		return nil, ewErrorf(opRecip, err)
	}

	return out, nil
}

// Neg returns -x for every element as float64.
// Errors: ErrNilArray. Complexity: O(n).
func Neg[A ndarray.Number](a ndarray.NDArray[A]) (*ndarray.Dense[float64], error) {
	out, err := Map(func(x A) float64 { return -float64(x) }, a)
	if err != nil {
		return nil, ewErrorf(opNeg, err)
	}

	return out, nil
}

// SubFromScalar returns k-x for every element as float64 (the generalized
// negation: Neg is SubFromScalar with k=0).
// Errors: ErrNilArray. Complexity: O(n).
func SubFromScalar[A ndarray.Number](a ndarray.NDArray[A], k float64) (*ndarray.Dense[float64], error) {
	out, err := Map(func(x A) float64 { return k - float64(x) }, a)
	if err != nil {
		return nil, ewErrorf(opSubFromScalar, err)
	}

	return out, nil
}
