package memds

import (
	"sync"
)

// Thread safe stack.
type TSStack[T any] struct {
	elements []T
	lock     sync.RWMutex
}

func NewTSStack[T any]() *TSStack[T] {
	return &TSStack[T]{}
}

// Push adds a value on top of the stack.
func (s *TSStack[T]) Push(value T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.elements = append(s.elements, value)
}

// PushAll pushes zero or more values, the last one ending up on top.
func (s *TSStack[T]) PushAll(values ...T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.elements = append(s.elements, values...)
}

// Pop removes the top element of the stack and returns it.
// Second return parameter is true, unless the stack was empty and there was
// nothing to pop.
func (s *TSStack[T]) Pop() (value T, ok bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.popNoLock()
}

func (s *TSStack[T]) popNoLock() (value T, ok bool) {
	if len(s.elements) == 0 {
		return
	}
	top := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return top, true
}

// PopAll removes all the elements of the stack and returns them.
// The top of the stack is the first element in the returned slice.
func (s *TSStack[T]) PopAll() []T {
	s.lock.Lock()
	defer s.lock.Unlock()

	values := s.valuesNoLock()
	s.elements = s.elements[:0]

	return values
}

// Peek returns the top element of the stack without removing it.
// Second return parameter is true, unless the stack was empty and there was
// nothing to peek.
func (s *TSStack[T]) Peek() (value T, ok bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if len(s.elements) == 0 {
		return
	}

	return s.elements[len(s.elements)-1], true
}

// Empty returns true if the stack does not contain any elements.
func (s *TSStack[T]) Empty() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.elements) == 0
}

// Size returns the number of elements within the stack.
func (s *TSStack[T]) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.elements)
}

// Clear removes all elements from the stack.
func (s *TSStack[T]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.elements = s.elements[:0]
}

// Values returns all elements of the stack ordered top first.
func (s *TSStack[T]) Values() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.valuesNoLock()
}

func (s *TSStack[T]) valuesNoLock() []T {
	values := make([]T, len(s.elements))

	for i, e := range s.elements {
		values[len(s.elements)-1-i] = e
	}

	return values
}
