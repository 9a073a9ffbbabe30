// SPDX-License-Identifier: MIT

// Package fold: Maybe is the explicit present-or-absent wrapper used by the
// reduction engine. It replaces the classic "designated sentinel value"
// convention: absence is a property of the wrapper, never a magic element
// value, so numeric domains that use zero (or NaN) natively cannot collide
// with it.

package fold

// Maybe holds either a present value of type T or nothing.
// The zero value of Maybe is absent.
type Maybe[T any] struct {
	val T
	ok  bool
}

// Some returns a present Maybe holding v.
// Complexity: O(1).
func Some[T any](v T) Maybe[T] { return Maybe[T]{val: v, ok: true} }

// None returns an absent Maybe.
// Complexity: O(1).
func None[T any]() Maybe[T] { return Maybe[T]{} }

// Present reports whether a value is held.
// Complexity: O(1).
func (m Maybe[T]) Present() bool { return m.ok }

// Get returns the held value and whether it is present. When absent, the
// returned value is the zero value of T.
// Complexity: O(1).
func (m Maybe[T]) Get() (T, bool) { return m.val, m.ok }

// OrElse returns the held value when present, def otherwise.
// Complexity: O(1).
func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.val
	}

	return def
}
