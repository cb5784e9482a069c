package seqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopy(t *testing.T) {
	seq := []int{1, 2, 3}
	seqCopy := Copy(seq)

	assert.Equal(t, seq, seqCopy)

	seqCopy[0] = 100
	assert.Equal(t, []int{1, 2, 3}, seq)
}

func TestReversed(t *testing.T) {
	seq := []int{1, 2, 3}

	assert.Equal(t, []int{3, 2, 1}, Reversed(seq))
	assert.Equal(t, []int{1, 2, 3}, seq)
	assert.Equal(t, []int{}, Reversed([]int{}))
}

func TestReverse(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	Reverse(seq)

	assert.Equal(t, []int{4, 3, 2, 1}, seq)
}

func TestMap(t *testing.T) {
	result := Map([]int{1, 2, 3}, func(e int) int { return e * 2 })
	assert.Equal(t, []int{2, 4, 6}, result)
}

func TestFilter(t *testing.T) {
	even := func(v int, _ int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	assert.Equal(t, []int{}, Filter([]int{1, 3}, even))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Flatten([][]int{{1, 2}, {}, {3, 4}}))
	assert.Equal(t, []int{}, Flatten([][]int{}))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}
