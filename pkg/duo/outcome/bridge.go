package outcome

import "github.com/ib-77/duo/pkg/duo/maybe"

// OkOr lifts a Maybe into an Outcome: present becomes success, absent
// becomes a failure carrying err. The caller supplies the failure value;
// the absent branch of a Maybe carries none of its own.
func OkOr[T, E any](m maybe.Maybe[T], err E) Outcome[T, E] {
	if m.IsPresent() {
		return Success[T, E](m.Unwrap())
	}
	return Failure[T](err)
}

// OkOrElse is OkOr with the failure value computed lazily. errFn runs only
// when m is absent.
func OkOrElse[T, E any](m maybe.Maybe[T], errFn func() E) Outcome[T, E] {
	if m.IsPresent() {
		return Success[T, E](m.Unwrap())
	}
	return Failure[T](errFn())
}

// Try adapts a (value, error) pair, the usual Go return shape, into an
// Outcome[T, error].
func Try[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

// Call invokes fn and adapts its (value, error) result into an Outcome.
func Call[T any](fn func() (T, error)) Outcome[T, error] {
	return Try(fn())
}
