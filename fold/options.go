// SPDX-License-Identifier: MIT

// Package fold: functional configuration for the reduction engine.
// This file defines:
//   - Option / config (functional options with internal state),
//   - WithMissing, the explicit missing-data mode,
//   - gatherOptions helper (internal) that resolves defaults in one place.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: config fields are unexported; public APIs consume ...Option.

package fold

// Option mutates the internal fold configuration. Safe to apply repeatedly
// (idempotent); last-writer-wins semantics.
type Option[E any] func(*config[E])

// config stores the effective configuration after applying Option setters.
// It is intentionally unexported; public entry points accept ...Option and
// resolve them via gatherOptions.
type config[E any] struct {
	// absent marks elements to be treated as missing. nil means every
	// element is present (the default).
	absent func(E) bool
}

// WithMissing enables missing-data mode: elements for which absent returns
// true act as identity elements for the fold (see package documentation for
// the exact combining rule).
//
// Inputs:
//   - absent: predicate marking missing elements; must be side-effect free.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1) to set; the predicate runs once per element during a fold.
//
// Notes:
//   - Passing a nil predicate disables the mode (all elements present).
func WithMissing[E any](absent func(E) bool) Option[E] {
	return func(c *config[E]) { c.absent = absent }
}

// gatherOptions applies user-provided setters on top of defaults.
// The default configuration treats every element as present.
// Complexity: O(k) for k options.
func gatherOptions[E any](opts ...Option[E]) config[E] {
	var c config[E] // defaults: absent == nil (all present)
	for _, set := range opts {
		set(&c) // apply in order; last-writer-wins
	}

	return c
}
