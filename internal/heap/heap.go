// Package heap is a typed wrapper over container/heap.
package heap

import goheap "container/heap"

type Heap[T any] struct {
	heap heap[T]
}

func Make[T any](less func(T, T) bool) Heap[T] {
	return Heap[T]{
		heap: heap[T]{
			less: less,
		},
	}
}

func (h *Heap[T]) Len() int {
	return len(h.heap.values)
}

func (h *Heap[T]) Pop() T {
	return goheap.Pop(&h.heap).(T)
}

func (h *Heap[T]) Push(value T) {
	goheap.Push(&h.heap, value)
}

// The element that Pop would return next.
func (h *Heap[T]) Peek() T {
	return h.heap.values[0]
}

// Replace the top element and restore the heap order.
func (h *Heap[T]) ReplaceTop(value T) {
	h.heap.values[0] = value
	goheap.Fix(&h.heap, 0)
}

func (h *Heap[T]) IsEmpty() bool {
	return len(h.heap.values) == 0
}

type heap[T any] struct {
	values []T
	less   func(T, T) bool
}

func (h *heap[T]) Len() int {
	return len(h.values)
}

func (h *heap[T]) Less(i, j int) bool {
	return h.less(h.values[i], h.values[j])
}

func (h *heap[T]) Swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *heap[T]) Push(x any) {
	h.values = append(h.values, x.(T))
}

func (h *heap[T]) Pop() any {
	n := len(h.values)
	value := h.values[n-1]
	h.values = h.values[0 : n-1]
	return value
}
