package memds

// thread unsafe LIFO stack.
type Stack[T any] struct {
	elements []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds a value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.elements = append(s.elements, value)
}

// PushAll pushes zero or more values, the last one ending up on top.
func (s *Stack[T]) PushAll(values ...T) {
	s.elements = append(s.elements, values...)
}

// Pop removes the top element of the stack and returns it.
// Second return parameter is true, unless the stack was empty and there was
// nothing to pop; an empty stack is left unchanged.
func (s *Stack[T]) Pop() (value T, ok bool) {
	if len(s.elements) == 0 {
		return
	}
	top := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return top, true
}

// Peek returns the top element of the stack without removing it.
// Second return parameter is true, unless the stack was empty and there was
// nothing to peek.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if len(s.elements) == 0 {
		return
	}

	return s.elements[len(s.elements)-1], true
}

// Empty returns true if the stack does not contain any elements.
func (s *Stack[T]) Empty() bool {
	return len(s.elements) == 0
}

// Size returns the number of elements within the stack.
func (s *Stack[T]) Size() int {
	return len(s.elements)
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.elements = s.elements[:0]
}

// Values returns all elements of the stack ordered top first, without
// aliasing the backing storage.
func (s *Stack[T]) Values() []T {
	values := make([]T, len(s.elements))

	for i, e := range s.elements {
		values[len(s.elements)-1-i] = e
	}

	return values
}

// thread unsafe stack iterator, top first.
type StackIterator[T any] struct {
	index    int
	elements []T
}

func (s *Stack[T]) Iterator() *StackIterator[T] {
	return &StackIterator[T]{
		index:    -1,
		elements: s.Values(),
	}
}

func (it *StackIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *StackIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *StackIterator[T]) Index() int {
	return it.index
}
