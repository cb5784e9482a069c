package seqs

// Drop returns a copy of seq without its first count elements. count defaults
// to 1; a count of len(seq) or more yields an empty slice. Drop panics if
// count is negative.
func Drop[T any](seq []T, count ...int) []T {
	n := optArg(count, 1)
	if n < 0 {
		panic("seqs.Drop: count must not be negative")
	}
	if n >= len(seq) {
		return make([]T, 0)
	}

	return Copy(seq[n:])
}

// DropRight returns a copy of seq without its last count elements. count
// defaults to 1; a count of len(seq) or more yields an empty slice. DropRight
// panics if count is negative.
func DropRight[T any](seq []T, count ...int) []T {
	n := optArg(count, 1)
	if n < 0 {
		panic("seqs.DropRight: count must not be negative")
	}
	if n >= len(seq) {
		return make([]T, 0)
	}

	return Copy(seq[:len(seq)-n])
}

// DropWhile returns a copy of seq without the longest prefix whose elements
// all satisfy p. Scanning stops at the first element for which p is false.
func DropWhile[T any](seq []T, p Predicate[T]) []T {
	start := 0
	for start < len(seq) && p(seq[start], start) {
		start++
	}

	return Copy(seq[start:])
}

// DropRightWhile returns a copy of seq without the longest suffix whose
// elements all satisfy p. Scanning starts at the last element and stops at
// the first one for which p is false.
func DropRightWhile[T any](seq []T, p Predicate[T]) []T {
	end := len(seq)
	for end > 0 && p(seq[end-1], end-1) {
		end--
	}

	return Copy(seq[:end])
}
