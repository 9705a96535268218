package duo

// Container is implemented by both Maybe[T] and Outcome[T, E] for their
// primary value slot. It lets callers write helpers that accept either
// container when only the value-or-default view matters.
type Container[T any] interface {
	// Unwrap returns the contained value; it panics when the primary slot
	// is not the active one.
	Unwrap() T
	// UnwrapOr returns the contained value, or def when the primary slot
	// is not the active one.
	UnwrapOr(def T) T
}
