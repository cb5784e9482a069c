package seqs

// Copy returns a fresh slice with the same elements as seq.
func Copy[T any](seq []T) []T {
	seqCopy := make([]T, len(seq))
	copy(seqCopy, seq)

	return seqCopy
}

// Reversed returns a copy of seq with the element order inverted.
func Reversed[T any](seq []T) []T {
	reversed := Copy(seq)
	Reverse(reversed)

	return reversed
}

// Reverse inverts the element order of seq in place. It is the only mutating
// function in the package.
func Reverse[T any](seq []T) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// Map returns the slice of mapper's results for each element of seq.
func Map[T any, U any](seq []T, mapper func(e T) U) []U {
	result := make([]U, len(seq))

	for i, e := range seq {
		result[i] = mapper(e)
	}

	return result
}

// Filter returns a new slice with the elements of seq that satisfy p.
func Filter[T any](seq []T, p Predicate[T]) []T {
	result := make([]T, 0)

	for i, e := range seq {
		if p(e, i) {
			result = append(result, e)
		}
	}

	return result
}

// Flatten concatenates the given slices into a single fresh slice.
func Flatten[T any](groups [][]T) []T {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	result := make([]T, 0, total)
	for _, g := range groups {
		result = append(result, g...)
	}

	return result
}

// Contains reports whether v occurs in seq.
func Contains[T comparable](seq []T, v T) bool {
	for _, e := range seq {
		if e == v {
			return true
		}
	}

	return false
}
