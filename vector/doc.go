// Package vector offers small linear-algebra leaf utilities: dot product
// and outer product over flat float64 sequences.
//
// These helpers are independent leaves by design: they iterate raw indices
// directly and reuse none of the flat-view or combinator machinery, because
// their inputs are already plain contiguous slices.
package vector
