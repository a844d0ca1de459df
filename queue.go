package bqueue

import (
	"errors"
	"sync"
)

var (
	// ErrClosed is returned by Put and TryPut once the queue has been
	// closed. Producing past the declared end of input is a caller bug,
	// so the item is rejected immediately rather than buffered, blocked
	// on, or dropped silently.
	ErrClosed = errors.New("bqueue: queue is closed")

	// ErrInvalidCapacity is returned by New when the requested capacity
	// is not positive.
	ErrInvalidCapacity = errors.New("bqueue: capacity must be positive")
)

// BoundedQueue is a fixed-capacity FIFO queue shared by concurrent
// producers and consumers. Items are delivered in the exact order they
// were enqueued, across any number of goroutines on either side.
//
// The zero value is not usable; construct queues with New. Callers need
// no external locking: a single internal mutex guards the buffer, the
// count and the closed flag, and two condition variables park producers
// waiting for space and consumers waiting for items. Which of several
// same-side waiters wakes first is unspecified.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	// ring buffer, len(items) is the fixed capacity
	items  []T
	head   int
	tail   int
	count  int
	closed bool
}

// New creates a queue that buffers at most capacity items.
// Capacity must be positive.
func New[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &BoundedQueue[T]{items: make([]T, capacity)}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Put appends item to the tail of the queue, blocking while the queue is
// full. It returns ErrClosed if the queue is closed, whether that
// happened before the call or while the call was waiting for space; the
// item is not enqueued in that case.
func (q *BoundedQueue[T]) Put(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == len(q.items) && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return ErrClosed
	}

	q.push(item)
	q.notEmpty.Signal()
	return nil
}

// TryPut is the non-blocking variant of Put. It returns true if the item
// was enqueued, and false if the queue is currently full or has been
// closed.
func (q *BoundedQueue[T]) TryPut(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || q.count == len(q.items) {
		return false
	}
	q.push(item)
	q.notEmpty.Signal()
	return true
}

// Get removes and returns the head item, blocking while the queue is
// empty and still open. Once the queue is closed and drained, Get
// returns the zero value and false; that is the normal end-of-stream
// signal for consumers, not an error condition.
func (q *BoundedQueue[T]) Get() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if q.count == 0 {
		var zero T
		return zero, false
	}

	item := q.pop()
	q.notFull.Signal()
	return item, true
}

// TryGet is the non-blocking variant of Get. It returns false whenever
// the queue is currently empty, regardless of whether it is still open.
// Use Get to distinguish "nothing yet" from "nothing ever again".
func (q *BoundedQueue[T]) TryGet() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		var zero T
		return zero, false
	}
	item := q.pop()
	q.notFull.Signal()
	return item, true
}

// Close marks the queue closed and wakes every blocked Put and Get.
// Waiting producers fail with ErrClosed; consumers keep draining whatever
// is buffered and then observe end of stream. Closing is a one-way
// transition and Close is idempotent: second and later calls are no-ops.
func (q *BoundedQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// IsClosed reports whether Close has been called.
func (q *BoundedQueue[T]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of items currently buffered. The value is
// advisory: under concurrent access it may be stale by the time it is
// observed.
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the fixed capacity the queue was constructed with.
func (q *BoundedQueue[T]) Cap() int {
	return len(q.items)
}

// push appends at the tail. Caller holds q.mu and has checked for space.
func (q *BoundedQueue[T]) push(item T) {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop removes the head. Caller holds q.mu and has checked for an item.
func (q *BoundedQueue[T]) pop() T {
	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero // drop the slot's reference for GC
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return item
}
