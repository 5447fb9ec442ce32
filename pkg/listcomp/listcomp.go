package listcomp

// Integer is satisfied by every signed and unsigned integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Predicate reports whether an element should be kept by [Filter].
type Predicate[T any] func(T) bool

// Transform maps one element to another for [Map].
type Transform[T, U any] func(T) U

// Filter returns the elements of s for which fn returns true, in their
// original order. The result is never nil.
func Filter[S ~[]E, E any](s S, fn Predicate[E]) S {
	filtered := make(S, 0)
	for _, v := range s {
		if fn(v) {
			filtered = append(filtered, v)
		}
	}

	return filtered
}

// Map returns a slice of the same length as s where element i is fn(s[i]).
// The result is never nil.
func Map[T, U any](s []T, fn Transform[T, U]) []U {
	mapped := make([]U, len(s))
	for i, v := range s {
		mapped[i] = fn(v)
	}

	return mapped
}

// IsEven reports whether n is evenly divisible by 2.
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// Exclaim returns s with a trailing "!".
func Exclaim[T ~string](s T) T {
	return s + "!"
}

// EvenFilter returns the even elements of nums, preserving order.
func EvenFilter[S ~[]E, E Integer](nums S) S {
	return Filter[S, E](nums, IsEven[E])
}

// ExclaimTransform returns a copy of sentences with "!" appended to each one.
// It is not idempotent: applying it twice yields "!!".
func ExclaimTransform[S ~[]E, E ~string](sentences S) S {
	return S(Map[E, E](sentences, Exclaim[E]))
}
