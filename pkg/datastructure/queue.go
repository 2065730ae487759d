package datastructure

import (
	"gopkg.in/eapache/queue.v1"
)

// Frontier holds discovered nodes waiting to be expanded.
type Frontier[T any] interface {
	Push(item T)
	Pop() T
	Len() int
}

// FIFO is a first-in first-out frontier backed by a ring buffer.
type FIFO[T any] struct {
	q *queue.Queue
}

func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{q: queue.New()}
}

func (f *FIFO[T]) Push(item T) {
	f.q.Add(item)
}

// Pop panics on an empty queue.
func (f *FIFO[T]) Pop() T {
	return f.q.Remove().(T)
}

func (f *FIFO[T]) Len() int {
	return f.q.Length()
}

// LIFO is a last-in first-out frontier.
type LIFO[T any] struct {
	items []T
}

func NewLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{items: make([]T, 0, 16)}
}

func (s *LIFO[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop panics on an empty stack.
func (s *LIFO[T]) Pop() T {
	n := len(s.items) - 1
	item := s.items[n]
	var zero T
	s.items[n] = zero
	s.items = s.items[:n]
	return item
}

func (s *LIFO[T]) Len() int {
	return len(s.items)
}
