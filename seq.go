package seqs

import (
	"math"
	"reflect"
)

// Tuple3 groups one element from each of the three inputs of [Zip3].
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// optArg returns the single optional trailing argument, or def if none was
// passed.
func optArg(args []int, def int) int {
	if len(args) > 0 {
		return args[0]
	}
	return def
}

// Chunk splits seq into groups of up to size consecutive elements; the last
// group may be shorter. size defaults to 1 and must be at least 1, otherwise
// Chunk panics.
func Chunk[T any](seq []T, size ...int) [][]T {
	n := optArg(size, 1)
	if n < 1 {
		panic("seqs.Chunk: size must be at least 1")
	}

	result := make([][]T, 0, (len(seq)+n-1)/n)

	for start := 0; start < len(seq); start += n {
		end := start + n
		if end > len(seq) {
			end = len(seq)
		}
		result = append(result, Copy(seq[start:end]))
	}

	return result
}

// Compact returns a new slice without the falsey elements of seq: nil,
// numeric zero, NaN, the empty string and false. The check looks through
// interface element types, so a boxed 0 inside a []any is dropped too.
func Compact[T comparable](seq []T) []T {
	result := make([]T, 0)

	for _, e := range seq {
		if isFalsey(e) {
			continue
		}
		result = append(result, e)
	}

	return result
}

func isFalsey[T comparable](e T) bool {
	var zero T
	if e == zero {
		return true
	}

	rv := reflect.ValueOf(e)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}

	return rv.IsZero()
}

// Head returns the first element of seq. The second return parameter is true,
// unless seq is empty and there is nothing to return.
func Head[T any](seq []T) (value T, ok bool) {
	if len(seq) == 0 {
		return
	}
	return seq[0], true
}

// Last returns the last element of seq. The second return parameter is true,
// unless seq is empty and there is nothing to return.
func Last[T any](seq []T) (value T, ok bool) {
	if len(seq) == 0 {
		return
	}
	return seq[len(seq)-1], true
}

// Initial returns a copy of seq without its last element. A seq of length 0
// or 1 is returned unchanged (as a copy), not emptied.
func Initial[T any](seq []T) []T {
	if len(seq) <= 1 {
		return Copy(seq)
	}
	return Copy(seq[:len(seq)-1])
}

// Nth returns the element at index n, which defaults to 0. A negative n
// counts back from the end of seq. The second return parameter is true,
// unless the index is out of range.
func Nth[T any](seq []T, n ...int) (value T, ok bool) {
	idx := optArg(n, 0)
	if idx < 0 {
		idx += len(seq)
	}
	if idx < 0 || idx >= len(seq) {
		return
	}
	return seq[idx], true
}

// Zip3 pairs up the elements of a, b and c by index. The result has the
// length of a; where b or c is shorter the corresponding tuple field holds
// the zero value of its type.
func Zip3[A, B, C any](a []A, b []B, c []C) []Tuple3[A, B, C] {
	result := make([]Tuple3[A, B, C], len(a))

	for i := range a {
		t := Tuple3[A, B, C]{A: a[i]}
		if i < len(b) {
			t.B = b[i]
		}
		if i < len(c) {
			t.C = c[i]
		}
		result[i] = t
	}

	return result
}
