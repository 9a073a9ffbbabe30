// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// ndarray package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers
// (malformed view metadata that already passed construction-time validation).

package ndarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (rank < 1 or
	// a negative dimension size). Constructors must validate before allocating.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrViewOutOfBounds indicates that a requested view window (offset plus
	// total element count) does not fit inside the parent's buffer region.
	ErrViewOutOfBounds = errors.New("ndarray: view exceeds buffer bounds")

	// ErrNilArray indicates that a nil NDArray was passed where a value is
	// required. Kernels in sibling packages reuse this sentinel.
	ErrNilArray = errors.New("ndarray: nil array")
)
