package outcome

import (
	"fmt"

	"github.com/ib-77/duo/pkg/duo"
	"github.com/ib-77/duo/pkg/duo/maybe"
)

// Outcome holds either a success value of type T or a failure value of type
// E; exactly one slot is meaningful per the discriminant. Instances never
// change after construction.
type Outcome[T, E any] struct {
	value T
	err   E
	ok    bool
}

// MismatchError is the panic payload of Unwrap on a failure or UnwrapErr on
// a success. Have renders the value the container actually holds.
type MismatchError struct {
	Op   string
	Have string
}

func (e *MismatchError) Error() string {
	return "outcome: " + e.Op + " called on the wrong variant, have " + e.Have
}

// Success wraps a success value.
func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v, ok: true}
}

// Failure wraps a failure value.
func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{err: err, ok: false}
}

// IsSuccess reports whether the success slot is active.
func (o Outcome[T, E]) IsSuccess() bool {
	return o.ok
}

// IsFailure reports whether the failure slot is active.
func (o Outcome[T, E]) IsFailure() bool {
	return !o.ok
}

// Or returns o when successful, otherwise other.
func (o Outcome[T, E]) Or(other Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o when successful, otherwise fn applied to the failure
// value. fn runs only on the failure branch.
func (o Outcome[T, E]) OrElse(fn func(E) Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return fn(o.err)
}

// Unwrap returns the success value. It panics with *MismatchError rendering
// the failure value when the container is a failure.
func (o Outcome[T, E]) Unwrap() T {
	if !o.ok {
		panic(&MismatchError{Op: "Unwrap", Have: fmt.Sprintf("Failure(%v)", o.err)})
	}
	return o.value
}

// UnwrapErr returns the failure value. It panics with *MismatchError
// rendering the success value when the container is a success.
func (o Outcome[T, E]) UnwrapErr() E {
	if o.ok {
		panic(&MismatchError{Op: "UnwrapErr", Have: fmt.Sprintf("Success(%v)", o.value)})
	}
	return o.err
}

// UnwrapOr returns the success value, or def on failure.
func (o Outcome[T, E]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the success value, or fn applied to the failure
// value. fn runs only on the failure branch.
func (o Outcome[T, E]) UnwrapOrElse(fn func(E) T) T {
	if o.ok {
		return o.value
	}
	return fn(o.err)
}

// UnwrapErrOr returns the failure value, or def on success.
func (o Outcome[T, E]) UnwrapErrOr(def E) E {
	if !o.ok {
		return o.err
	}
	return def
}

// UnwrapErrOrElse returns the failure value, or fn applied to the success
// value. fn runs only on the success branch.
func (o Outcome[T, E]) UnwrapErrOrElse(fn func(T) E) E {
	if !o.ok {
		return o.err
	}
	return fn(o.value)
}

// LetOk invokes fn with the success value only on the success branch.
func (o Outcome[T, E]) LetOk(fn func(T)) {
	if o.ok {
		fn(o.value)
	}
}

// LetErr invokes fn with the failure value only on the failure branch.
func (o Outcome[T, E]) LetErr(fn func(E)) {
	if !o.ok {
		fn(o.err)
	}
}

// Equals reports whether both containers hold the same variant with values
// equal under duo.ValueEqual. A success never equals a failure, even when
// the inner values compare equal.
func (o Outcome[T, E]) Equals(other Outcome[T, E]) bool {
	if o.ok != other.ok {
		return false
	}
	if o.ok {
		return duo.ValueEqual(o.value, other.value)
	}
	return duo.ValueEqual(o.err, other.err)
}

// ToSlice returns exactly one element: the success value or the failure
// value, unified as any.
func (o Outcome[T, E]) ToSlice() []any {
	if o.ok {
		return []any{o.value}
	}
	return []any{o.err}
}

// Ok keeps the success value as a present Maybe, discarding any failure.
func (o Outcome[T, E]) Ok() maybe.Maybe[T] {
	if o.ok {
		return maybe.Present(o.value)
	}
	return maybe.Absent[T]()
}

// Err keeps the failure value as a present Maybe, discarding any success.
func (o Outcome[T, E]) Err() maybe.Maybe[E] {
	if !o.ok {
		return maybe.Present(o.err)
	}
	return maybe.Absent[E]()
}

func (o Outcome[T, E]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}
