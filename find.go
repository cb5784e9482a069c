package seqs

// A Predicate reports whether the element at the given index passes a test.
// Predicates must be pure: no observable side effects besides the result.
type Predicate[T any] func(value T, index int) bool

// Negate wraps p into a predicate with the inverted result.
func Negate[T any](p Predicate[T]) Predicate[T] {
	return func(value T, index int) bool {
		return !p(value, index)
	}
}

// FindIndex returns the lowest index at or after fromIndex whose element
// satisfies p, or -1 if there is none. fromIndex defaults to 0; a negative
// fromIndex is treated as 0.
func FindIndex[T any](seq []T, p Predicate[T], fromIndex ...int) int {
	start := optArg(fromIndex, 0)
	if start < 0 {
		start = 0
	}

	for i := start; i < len(seq); i++ {
		if p(seq[i], i) {
			return i
		}
	}

	return -1
}

// FindLastIndex scans seq backward from fromIndex and returns the highest
// index whose element satisfies p, or -1 if there is none. fromIndex defaults
// to the last index; a fromIndex past the end is clamped to the last index,
// and a negative fromIndex yields -1.
func FindLastIndex[T any](seq []T, p Predicate[T], fromIndex ...int) int {
	start := optArg(fromIndex, len(seq)-1)
	if start > len(seq)-1 {
		start = len(seq) - 1
	}

	for i := start; i >= 0; i-- {
		if p(seq[i], i) {
			return i
		}
	}

	return -1
}

// Some returns true if at least one element of seq satisfies p.
func Some[T any](seq []T, p Predicate[T]) bool {
	for i, e := range seq {
		if p(e, i) {
			return true
		}
	}

	return false
}

// Every returns true if every element of seq satisfies p. It is true for an
// empty seq.
func Every[T any](seq []T, p Predicate[T]) bool {
	return !Some(seq, Negate(p))
}
