// Package opt provides an Option type holding a dynamically typed value or
// nothing.
//
// # Overview
//
// An Option is either Some(v), present and holding any value, or None,
// absent. The zero value is None. Construction never fails: Some accepts
// any value, including nil, and Some(nil) is present and distinct from None.
//
// Typed access goes through package-level generic functions, since methods
// cannot introduce type parameters:
//
//	o := opt.Some(42)
//	n, err := opt.Unwrap[int64](o) // 42, nil
//	f := opt.UnwrapOr(o, 0.0)      // 42.0
//
// Unwrap applies numeric widening: an integer unwraps as a wider integer or
// as float64, and across signedness when the value is representable. A held
// nil unwraps through any interface target, coming back as nil. Narrowing,
// such as float to integer, fails with ErrTypeMismatch, and unwrapping None
// fails with ErrAbsent. UnwrapOr is total and never fails.
//
// # Combinators
//
// Map and FlatMap chain computations over present values and short-circuit
// on None:
//
//	opt.Map(o, func(n int) int { return n * 2 }) // Some(84)
//	opt.Map(opt.None(), func(n int) int { return n * 2 }) // None, f not called
//
// When the held value does not convert to the combinator's argument type,
// both return None. Only Unwrap reports conversion failures as errors.
//
// # Equality
//
// Equal compares held values. None equals nothing, not even None, so
// absence never satisfies an equality check. Present numbers compare
// mathematically across types: Some(2).Equal(Some(2.0)) is true. Payload
// types can take over the comparison by implementing Equaler.
//
// The package has no dependencies beyond the standard library and knows
// nothing about documents; see the dig package for Option-based traversal
// of document trees.
package opt
