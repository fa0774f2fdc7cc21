package util

// Stack is a LIFO over a slice, backing backward navigation through
// interface states.
type Stack[T any] struct {
	items []T
}

// Push puts an item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	if last := len(s.items) - 1; last >= 0 {
		item = s.items[last]
		s.items = s.items[:last]
	}
	return
}

// Len reports how many items the stack holds.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
