package outcome

// And returns other when o is successful; a failing o short-circuits,
// carrying its original failure value through with its type unchanged.
func And[T, U, E any](o Outcome[T, E], other Outcome[U, E]) Outcome[U, E] {
	if o.IsFailure() {
		return Failure[U](o.err)
	}
	return other
}

// AndThen applies fn to the success value, flattened; a failing o
// short-circuits with its original failure value. fn runs only on the
// success branch.
func AndThen[T, U, E any](o Outcome[T, E], fn func(T) Outcome[U, E]) Outcome[U, E] {
	if o.IsFailure() {
		return Failure[U](o.err)
	}
	return fn(o.value)
}

// Map transforms the success slot; a failure passes through unchanged.
func Map[T, U, E any](o Outcome[T, E], fn func(T) U) Outcome[U, E] {
	if o.IsFailure() {
		return Failure[U](o.err)
	}
	return Success[U, E](fn(o.value))
}

// MapErr transforms the failure slot; a success passes through unchanged.
func MapErr[T, E, F any](o Outcome[T, E], fn func(E) F) Outcome[T, F] {
	if o.IsSuccess() {
		return Success[T, F](o.value)
	}
	return Failure[T](fn(o.err))
}

// MapOr behaves like Map on success; on failure it wraps def as a new
// success value. The default is wrapped, not returned bare.
func MapOr[T, U, E any](o Outcome[T, E], def U, fn func(T) U) Outcome[U, E] {
	if o.IsFailure() {
		return Success[U, E](def)
	}
	return Success[U, E](fn(o.value))
}

// MapOrElse is MapOr with the default computed lazily from the failure
// value. defFn runs only on the failure branch; fn only on the success one.
func MapOrElse[T, U, E any](o Outcome[T, E], defFn func(E) U, fn func(T) U) Outcome[U, E] {
	if o.IsFailure() {
		return Success[U, E](defFn(o.err))
	}
	return Success[U, E](fn(o.value))
}

// MapErrOr mirrors MapOr on the failure side: on failure it transforms the
// failure value with fn; on success it wraps def as a new failure value.
func MapErrOr[T, E, F any](o Outcome[T, E], def F, fn func(E) F) Outcome[T, F] {
	if o.IsSuccess() {
		return Failure[T](def)
	}
	return Failure[T](fn(o.err))
}

// MapErrOrElse is MapErrOr with the default computed lazily from the success
// value. defFn runs only on the success branch; fn only on the failure one.
func MapErrOrElse[T, E, F any](o Outcome[T, E], defFn func(T) F, fn func(E) F) Outcome[T, F] {
	if o.IsSuccess() {
		return Failure[T](defFn(o.value))
	}
	return Failure[T](fn(o.err))
}

// Match dispatches to exactly one of the two branches and returns its result.
func Match[T, E, U any](o Outcome[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	if o.IsSuccess() {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

// Equal reports equality for comparable slot types without reflection.
func Equal[T, E comparable](a, b Outcome[T, E]) bool {
	return a == b
}
