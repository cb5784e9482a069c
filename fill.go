package seqs

// Fill returns a copy of seq with the elements at indices [start, end)
// replaced by value; seq itself is never modified. bounds holds the optional
// start (default 0) and end (default len(seq)). Out-of-range bounds are
// clamped; if start is not below end after clamping, nothing is replaced.
func Fill[T any](seq []T, value T, bounds ...int) []T {
	start := 0
	end := len(seq)
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}

	if start < 0 {
		start = 0
	}
	if end > len(seq) {
		end = len(seq)
	}

	result := Copy(seq)
	for i := start; i < end; i++ {
		result[i] = value
	}

	return result
}
