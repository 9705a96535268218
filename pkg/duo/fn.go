package duo

import "reflect"

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Pair groups two values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two components.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// ValueEqual reports deep value equality between a and b, treating nil
// interfaces and nil pointers uniformly. The container type parameters are
// unconstrained, so == is not available and comparison goes through reflect.
func ValueEqual(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return reflect.DeepEqual(a, b)
}

// IsNil reports whether i is a nil interface or a typed nil pointer.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
