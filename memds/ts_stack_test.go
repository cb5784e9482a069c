package memds

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTSStack(t *testing.T) {
	s := NewTSStack[int]()
	assert.Zero(t, s.Size())
	assert.True(t, s.Empty())

	s.Push(1)
	s.PushAll(2, 3)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int{3, 2, 1}, s.Values())

	elem, ok := s.Peek()
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, 3, elem)

	elem, ok = s.Pop()
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, 3, elem)
	assert.Equal(t, 2, s.Size())

	_, ok = NewTSStack[int]().Pop()
	assert.False(t, ok)
}

func TestTSStackPopAll(t *testing.T) {
	s := NewTSStack[int]()
	s.PushAll(1, 2, 3)

	assert.Equal(t, []int{3, 2, 1}, s.PopAll())
	assert.True(t, s.Empty())
	assert.Equal(t, []int{}, s.PopAll())
}

func TestTSStackClear(t *testing.T) {
	s := NewTSStack[int]()
	s.PushAll(1, 2)
	s.Clear()

	assert.True(t, s.Empty())
	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestTSStackConcurrentPushes(t *testing.T) {
	s := NewTSStack[int]()

	var wg sync.WaitGroup
	goroutines := 10
	pushesPerGoroutine := 100

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < pushesPerGoroutine; i++ {
				s.Push(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*pushesPerGoroutine, s.Size())
}
