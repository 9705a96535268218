package maybe

import "github.com/ib-77/duo/pkg/duo"

// And returns absent when m is absent, otherwise other unchanged. other is
// already constructed by the caller; there is no laziness here — use AndThen
// when the second container is expensive to build.
func And[T, U any](m Maybe[T], other Maybe[U]) Maybe[U] {
	if m.IsAbsent() {
		return Absent[U]()
	}
	return other
}

// AndThen returns absent when m is absent, otherwise fn applied to the value,
// flattened. fn runs only on the present branch.
func AndThen[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.IsAbsent() {
		return Absent[U]()
	}
	return fn(m.value)
}

// Map transforms the value when present; absent stays absent.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.IsAbsent() {
		return Absent[U]()
	}
	return Present(fn(m.value))
}

// MapOr behaves like Map when present; when absent it wraps def as a present
// value. The default is wrapped, not returned bare — contrast UnwrapOr.
func MapOr[T, U any](m Maybe[T], def U, fn func(T) U) Maybe[U] {
	if m.IsAbsent() {
		return Present(def)
	}
	return Present(fn(m.value))
}

// MapOrElse is MapOr with a lazily computed default. defFn runs only on the
// absent branch; fn only on the present branch.
func MapOrElse[T, U any](m Maybe[T], defFn func() U, fn func(T) U) Maybe[U] {
	if m.IsAbsent() {
		return Present(defFn())
	}
	return Present(fn(m.value))
}

// Match dispatches to exactly one of the two branches and returns its result.
func Match[T, U any](m Maybe[T], onPresent func(T) U, onAbsent func() U) U {
	if m.IsPresent() {
		return onPresent(m.value)
	}
	return onAbsent()
}

// Equal reports equality for comparable element types without reflection.
func Equal[T comparable](a, b Maybe[T]) bool {
	return a == b
}

// Zip pairs the values of two present containers; absent when either side is
// absent.
func Zip[A, B any](a Maybe[A], b Maybe[B]) Maybe[duo.Pair[A, B]] {
	if a.IsAbsent() || b.IsAbsent() {
		return Absent[duo.Pair[A, B]]()
	}
	return Present(duo.PairOf(a.value, b.value))
}
