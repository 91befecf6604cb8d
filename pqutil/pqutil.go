// Package pqutil exposes a priority queue which dequeues generic payloads by descending integer priority.
package pqutil

import (
	"github.com/container-tools/pq"
)

// Item encapsulates a payload and its priority.
type Item[T any] struct {
	Payload  T
	Priority int
}

// PriorityQueue implements a basic priority queue which accepts a generic payload with an integer priority.
type PriorityQueue[T any] struct {
	inner *pq.PriorityQueue[Item[T]]
}

// NewPriorityQueue creates a new priority queue where the underlying capacity is set to the given value.
//
// NOTE: The 'PriorityQueue' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	inner := pq.NewPriorityQueueFunc(make([]Item[T], 0, capacity), func(a, b Item[T]) bool {
		return a.Priority > b.Priority
	})

	return &PriorityQueue[T]{inner: inner}
}

// Enqueue adds the given item to the priority queue.
func (p *PriorityQueue[T]) Enqueue(item Item[T]) {
	p.inner.Enqueue(item)
}

// Dequeue returns the item from the queue with the highest priority and removes it; where multiple items have the
// same priority, they're returned in an arbitrary order. If the queue is empty then it returns the default value and
// false for the bool return value.
func (p *PriorityQueue[T]) Dequeue() (Item[T], bool) {
	return p.inner.Dequeue()
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return p.inner.Len()
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(item Item[T]) error) error {
	return p.inner.Drain(fn)
}
