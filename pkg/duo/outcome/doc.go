// Package outcome provides an immutable success-or-failure container
// Outcome[T, E]. Unlike maybe.Maybe, the failure branch carries data: an
// error value of type E, which is unconstrained and need not implement
// Go's error interface.
//
// Key operations:
// - Success/Failure: construct a container
// - Try/Call: adapt Go's (T, error) convention into an Outcome
// - Or/OrElse: substitute on the failure branch
// - And/AndThen/Map/MapErr and the MapOr/MapErrOr families: type-changing
//   combinators as package functions; a failing receiver short-circuits
//   And/AndThen carrying its original failure value through unchanged
// - Unwrap/UnwrapErr and the UnwrapOr families: extract either slot;
//   only Unwrap and UnwrapErr are partial
// - LetOk/LetErr: side effects on exactly one branch
// - Ok/Err: bridge to maybe.Maybe, discarding the other slot
// - OkOr/OkOrElse: bridge a maybe.Maybe in, supplying the failure value
//
// Functions passed to *Else operations run only when their branch is taken.
package outcome
