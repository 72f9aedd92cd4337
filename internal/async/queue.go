// Package async provides the in-process queues and worker pool backing the
// recognition pipeline. Queue contents are not persisted; items are lost on
// restart.
package async

import (
	"sync"
)

// Queue is a bounded FIFO. TryEnqueue fails once Len reaches the capacity,
// which is how admission control applies backpressure.
type Queue[T any] struct {
	ch chan T
}

// NewQueue returns a bounded queue holding at most size items.
func NewQueue[T any](size int) *Queue[T] {
	if size < 1 {
		size = 1
	}
	return &Queue[T]{ch: make(chan T, size)}
}

// TryEnqueue adds item without blocking. It reports false when the queue
// is at capacity.
func (q *Queue[T]) TryEnqueue(item T) bool {
	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

// Dequeue blocks until an item is available or done is closed.
func (q *Queue[T]) Dequeue(done <-chan struct{}) (T, bool) {
	select {
	case item := <-q.ch:
		return item, true
	case <-done:
		var zero T
		return zero, false
	}
}

// TryDequeue removes an item without blocking.
func (q *Queue[T]) TryDequeue() (T, bool) {
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Len is the number of queued items.
func (q *Queue[T]) Len() int { return len(q.ch) }

// Cap is the queue capacity.
func (q *Queue[T]) Cap() int { return cap(q.ch) }

// Buffer is an unbounded FIFO guarded by a mutex. Enqueue never fails;
// the result writer drains it with TryDequeue on a poll interval.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewBuffer returns an empty unbounded buffer.
func NewBuffer[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// Enqueue appends item. It always succeeds.
func (b *Buffer[T]) Enqueue(item T) {
	b.mu.Lock()
	b.items = append(b.items, item)
	b.mu.Unlock()
}

// TryDequeue removes the oldest item, reporting false when empty.
func (b *Buffer[T]) TryDequeue() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) == 0 {
		var zero T
		return zero, false
	}
	item := b.items[0]
	b.items = b.items[1:]
	return item, true
}

// Len is the number of buffered items.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
