// Package pq exposes a generic priority queue implemented using a binary heap.
package pq

import "golang.org/x/exp/constraints"

// LessFunc is the ordering relation for a priority queue; it reports whether 'a' should be dequeued before 'b'. It
// must be a strict weak ordering, and must be pure and deterministic; the queue may invoke it any number of times
// during a single operation.
type LessFunc[T any] func(a, b T) bool

// PriorityQueue implements a basic priority queue which always dequeues the element its ordering ranks first.
//
// NOTE: A 'PriorityQueue' is not safe for concurrent use, access from multiple goroutines requires external
// synchronization.
type PriorityQueue[T any] struct {
	heap []T
	less LessFunc[T]
}

// NewPriorityQueue creates a new priority queue containing the given elements, ordered by the natural 'less than'
// comparison for T.
//
// NOTE: The queue takes ownership of the given slice and uses it as its backing storage; the caller should not access
// the slice afterwards.
func NewPriorityQueue[T constraints.Ordered](elements []T) *PriorityQueue[T] {
	return NewPriorityQueueFunc(elements, func(a, b T) bool { return a < b })
}

// NewPriorityQueueFunc creates a new priority queue containing the given elements, ordered by the given function.
//
// NOTE: The queue takes ownership of the given slice and uses it as its backing storage; the caller should not access
// the slice afterwards.
func NewPriorityQueueFunc[T any](elements []T, less LessFunc[T]) *PriorityQueue[T] {
	queue := &PriorityQueue[T]{heap: elements, less: less}
	queue.heapify()

	return queue
}

// Enqueue adds the given element to the priority queue.
func (p *PriorityQueue[T]) Enqueue(element T) {
	p.heap = append(p.heap, element)
	p.siftUp(len(p.heap) - 1)
}

// Dequeue returns a copy of the element the queue's ordering ranks first and removes it. If the queue is empty then
// it returns the default value and false for the bool return value.
func (p *PriorityQueue[T]) Dequeue() (T, bool) {
	if len(p.heap) == 0 {
		return *new(T), false
	}

	last := len(p.heap) - 1
	p.heap[0], p.heap[last] = p.heap[last], p.heap[0]

	element := p.heap[last]
	p.heap[last] = *new(T) // for the GC
	p.heap = p.heap[:last]

	p.siftDown(0)

	return element, true
}

// Peek returns a copy of the element that 'Dequeue' would return next, without removing it. If the queue is empty
// then it returns the default value and false for the bool return value.
func (p *PriorityQueue[T]) Peek() (T, bool) {
	if len(p.heap) == 0 {
		return *new(T), false
	}

	return p.heap[0], true
}

// Len returns the number of elements in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return len(p.heap)
}

// Cap returns the capacity of the queue's backing storage. It has the same behavior as a slices capacity, meaning the
// queue may grow beyond it.
func (p *PriorityQueue[T]) Cap() int {
	return cap(p.heap)
}

// Drain removes all elements from the queue in order, running the given function on each element. In the event of an
// error, dequeuing stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(element T) error) error {
	for p.Len() > 0 {
		element, _ := p.Dequeue()

		if err := fn(element); err != nil {
			return err
		}
	}

	return nil
}
