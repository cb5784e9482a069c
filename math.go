package seqs

import (
	"golang.org/x/exp/constraints"
)

// Min returns the smallest element of seq. The second return parameter is
// true, unless seq is empty.
func Min[T constraints.Ordered](seq []T) (min T, ok bool) {
	if len(seq) == 0 {
		return
	}

	min = seq[0]
	for _, e := range seq[1:] {
		if e < min {
			min = e
		}
	}

	return min, true
}

// Max returns the largest element of seq. The second return parameter is
// true, unless seq is empty.
func Max[T constraints.Ordered](seq []T) (max T, ok bool) {
	if len(seq) == 0 {
		return
	}

	max = seq[0]
	for _, e := range seq[1:] {
		if e > max {
			max = e
		}
	}

	return max, true
}
