// Package maybe provides an immutable optional-value container Maybe[T].
//
// A Maybe is either present with exactly one value or absent with no value.
// The absent variant is the zero value of the struct, so all absent values
// of an instantiation are identical and cost no allocation.
//
// Key operations:
// - Present/Absent/FromPtr: construct a container
// - Or/OrElse/Xor/Filter: combine and narrow without unwrapping
// - And/AndThen/Map/MapOr/MapOrElse/Match: type-changing combinators
//   (package functions, since Go methods cannot add type parameters)
// - Unwrap/UnwrapOr/UnwrapOrElse: extract the value; only Unwrap is partial
// - LetPresent: side effect on the present branch only
// - ToSlice/All/ToPtr: view the container as a sequence or pointer
//
// Functions passed to *Else operations run only when their branch is taken.
package maybe
