package bqueue

// Consume drains q until it is closed and empty, returning the items in
// the order this consumer received them. When several consumers share a
// queue, each item is delivered to exactly one of them; only the order
// within a single consumer's slice is meaningful, the interleaving across
// consumers is not.
func Consume[T any](q *BoundedQueue[T]) []T {
	var out []T
	for {
		item, ok := q.Get()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

// ConsumeFunc drains q like Consume but hands each item to fn instead of
// collecting a slice. fn runs on the consumer's goroutine, outside the
// queue's lock.
func ConsumeFunc[T any](q *BoundedQueue[T], fn func(item T)) {
	for {
		item, ok := q.Get()
		if !ok {
			return
		}
		fn(item)
	}
}
