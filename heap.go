package pq

// The backing slice is an implicit binary tree where the element at index i has its children at indexes 2i+1 and
// 2i+2, and its parent at index (i-1)/2. The heap invariant is that no element orders before its parent; the element
// the queue's ordering ranks first is therefore always at index zero.

// heapify establishes the heap invariant over the whole backing slice by sifting down every internal node, from the
// last one up to the root. Indexes past len/2-1 are leaves and have nothing below them to sift.
func (p *PriorityQueue[T]) heapify() {
	for i := len(p.heap)/2 - 1; i >= 0; i-- {
		p.siftDown(i)
	}
}

// siftUp restores the heap invariant above index i by swapping the element towards the root while it orders before
// its parent. The root has no parent, so a parent index is only ever computed for a non-zero i.
func (p *PriorityQueue[T]) siftUp(i int) {
	for i != 0 {
		parent := (i - 1) / 2

		if !p.less(p.heap[i], p.heap[parent]) {
			return
		}

		p.heap[i], p.heap[parent] = p.heap[parent], p.heap[i]
		i = parent
	}
}

// siftDown restores the heap invariant below index i by swapping the element towards the leaves while a child orders
// before it. When both children order before it, the child which orders before the other is chosen, so that the
// element promoted to index i orders before everything beneath it. A node on the last level may have a left child but
// no right child; the bounds checks below handle that without reading past the end of the slice.
func (p *PriorityQueue[T]) siftDown(i int) {
	for {
		var (
			left  = 2*i + 1
			right = 2*i + 2
		)

		if left >= len(p.heap) {
			return
		}

		child := left
		if right < len(p.heap) && p.less(p.heap[right], p.heap[left]) {
			child = right
		}

		if !p.less(p.heap[child], p.heap[i]) {
			return
		}

		p.heap[i], p.heap[child] = p.heap[child], p.heap[i]
		i = child
	}
}
