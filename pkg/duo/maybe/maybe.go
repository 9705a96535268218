package maybe

import (
	"fmt"
	"iter"

	"github.com/ib-77/duo/pkg/duo"
)

// Maybe holds either one value of type T or nothing. The zero value is the
// canonical absent container. Instances never change after construction.
type Maybe[T any] struct {
	value   T
	present bool
}

// AbsentError is the panic payload of Unwrap on an absent container.
type AbsentError struct{}

func (*AbsentError) Error() string {
	return "maybe: Unwrap called on an absent value"
}

// Present wraps a value.
func Present[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// Absent returns the canonical absent container: the zero value of Maybe[T].
func Absent[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr wraps the pointee, or returns absent for a nil pointer.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// IsPresent reports whether a value is held.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// IsAbsent reports whether no value is held.
func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// Or returns m when present, otherwise other.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return other
}

// OrElse returns m when present, otherwise fn(). fn runs only on the absent
// branch.
func (m Maybe[T]) OrElse(fn func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return fn()
}

// Xor returns whichever of m and other is present when exactly one is;
// it returns absent when both or neither are present.
func (m Maybe[T]) Xor(other Maybe[T]) Maybe[T] {
	if m.present == other.present {
		return Absent[T]()
	}
	if m.present {
		return m
	}
	return other
}

// Filter returns m when present and pred accepts the value, otherwise absent.
// pred runs only on the present branch.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.present && pred(m.value) {
		return m
	}
	return Absent[T]()
}

// Unwrap returns the value. It panics with *AbsentError when absent; call
// sites must have established presence beforehand.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		panic(&AbsentError{})
	}
	return m.value
}

// UnwrapOr returns the value when present, otherwise def.
func (m Maybe[T]) UnwrapOr(def T) T {
	if m.present {
		return m.value
	}
	return def
}

// UnwrapOrElse returns the value when present, otherwise fn(). fn runs only
// on the absent branch.
func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.present {
		return m.value
	}
	return fn()
}

// LetPresent invokes fn with the value only when present.
func (m Maybe[T]) LetPresent(fn func(T)) {
	if m.present {
		fn(m.value)
	}
}

// ToSlice returns a one-element slice when present, an empty slice otherwise.
func (m Maybe[T]) ToSlice() []T {
	if m.present {
		return []T{m.value}
	}
	return []T{}
}

// All iterates over the zero or one contained values.
func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.present {
			yield(m.value)
		}
	}
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (m Maybe[T]) ToPtr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

// Equals reports whether both containers are absent, or both are present
// with values equal under duo.ValueEqual. For comparable T prefer Equal.
func (m Maybe[T]) Equals(other Maybe[T]) bool {
	if m.present != other.present {
		return false
	}
	if !m.present {
		return true
	}
	return duo.ValueEqual(m.value, other.value)
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Present(%v)", m.value)
	}
	return "Absent"
}
