// Package fold provides the generic reduction engine of ndkit: a
// left-to-right, single-pass fold over the row-major flat view of any
// N-dimensional array, with an optional key projection and an explicit
// missing-data mode.
//
// The fold package provides:
//
//   - Reduce / ReduceInit / ReduceKeyed / ReduceMaybe — the engine itself,
//     folding a binary operator over the flat element sequence.
//   - Maybe[T], an explicit present-or-absent wrapper that replaces
//     sentinel "missing" values, so absence never collides with legitimate
//     zero values in numeric domains.
//   - Aggregates built as direct specializations of the engine: Sum, Prod,
//     Min, Max, Mean, CountIf and Extent (running (min,max) pair).
//
// Missing-data semantics (WithMissing): elements the predicate marks absent
// act as identity elements for the fold — if both operands are present the
// operator is applied; if exactly one is present the result is that one (the
// operator is NOT invoked); if neither is present the result is absent.
// This makes any operator idempotent-safe under missing data without
// requiring it to understand absence itself.
//
// Folding an empty sequence (or an all-absent one) with no explicit initial
// value fails with ErrEmptySequence; callers needing a defined result must
// supply one via ReduceInit, or use ReduceMaybe where all-absent is a value,
// not an error.
package fold
