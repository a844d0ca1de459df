package bqueue

import "fmt"

// SourceFunc is a pull-style item source used by ProduceFrom. It returns
// the next item, ok=false once the source is exhausted, or a non-nil
// error if reading the source itself failed.
type SourceFunc[T any] func() (item T, ok bool, err error)

// Produce feeds every item of source into q in order. It stops at the
// first Put failure and returns that error; a nil return means the whole
// source was enqueued. Produce never closes q and never mutates source:
// deciding when the stream ends is the coordination layer's job (see
// Group), since several producers may share one queue.
func Produce[T any](q *BoundedQueue[T], source []T) error {
	for _, item := range source {
		if err := q.Put(item); err != nil {
			return err
		}
	}
	return nil
}

// ProduceFrom pulls items from next and feeds them into q until the
// source reports exhaustion, the source fails, or a Put fails. Source
// failures are wrapped so callers can tell them apart from queue errors.
func ProduceFrom[T any](q *BoundedQueue[T], next SourceFunc[T]) error {
	for {
		item, ok, err := next()
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
		if !ok {
			return nil
		}
		if err := q.Put(item); err != nil {
			return err
		}
	}
}

// SliceSource adapts a slice into a SourceFunc, yielding the elements in
// order. The slice is read, never modified.
func SliceSource[T any](source []T) SourceFunc[T] {
	i := 0
	return func() (T, bool, error) {
		if i >= len(source) {
			var zero T
			return zero, false, nil
		}
		item := source[i]
		i++
		return item, true, nil
	}
}
