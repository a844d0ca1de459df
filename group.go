package bqueue

import (
	"errors"
	"log/slog"
	"sync"
)

// Group wires producers and consumers to one shared queue and owns the
// lifetimes of the goroutines it spawns.
//
// Close policy: the group, not any individual producer, closes the queue.
// Wait first joins every producer goroutine, then calls Close exactly
// once, then joins the consumers, which drain whatever is still buffered
// and exit on end of stream. Close being idempotent, an extra external
// Close does no harm, but it is never required.
//
// Producer failures (a failed source read, or a Put against a queue
// something closed early) are recorded as they happen and returned,
// joined, by Wait after shutdown.
type Group[T any] struct {
	queue *BoundedQueue[T]

	producers sync.WaitGroup
	consumers sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// GroupOption is a functional option for configuring a Group.
type GroupOption[T any] func(*Group[T])

// WithQueue makes the group coordinate over an existing queue instead of
// creating its own. The capacity passed to NewGroup is ignored.
func WithQueue[T any](q *BoundedQueue[T]) GroupOption[T] {
	return func(g *Group[T]) {
		g.queue = q
	}
}

// NewGroup creates a coordinator over a fresh queue of the given
// capacity. If a queue is supplied via WithQueue the group uses it as-is
// and capacity is not validated.
func NewGroup[T any](capacity int, opts ...GroupOption[T]) (*Group[T], error) {
	g := &Group[T]{}
	for _, opt := range opts {
		opt(g)
	}
	if g.queue == nil {
		q, err := New[T](capacity)
		if err != nil {
			return nil, err
		}
		g.queue = q
	}
	return g, nil
}

// Queue returns the shared queue the group coordinates over.
func (g *Group[T]) Queue() *BoundedQueue[T] {
	return g.queue
}

// GoProducer spawns a producer goroutine that enqueues every item of
// source in order. All producers must be spawned before Wait is called.
func (g *Group[T]) GoProducer(source []T) {
	g.goProduce(func() error {
		return Produce(g.queue, source)
	})
}

// GoProducerFunc spawns a producer goroutine that pulls items from next
// until exhaustion or failure.
func (g *Group[T]) GoProducerFunc(next SourceFunc[T]) {
	g.goProduce(func() error {
		return ProduceFrom(g.queue, next)
	})
}

func (g *Group[T]) goProduce(run func() error) {
	g.producers.Add(1)
	go func() {
		defer g.producers.Done()
		if err := run(); err != nil {
			slog.Debug("producer failed", "error", err)
			g.mu.Lock()
			g.errs = append(g.errs, err)
			g.mu.Unlock()
		}
	}()
}

// Consumer is the handle for a consumer spawned by GoConsumer. Items
// must not be called until Wait has returned.
type Consumer[T any] struct {
	items []T
}

// Items returns everything this consumer received, in receipt order.
func (c *Consumer[T]) Items() []T {
	return c.items
}

// GoConsumer spawns a consumer goroutine that drains the queue until it
// is closed and empty. The returned handle exposes the items the
// consumer received once Wait has returned.
func (g *Group[T]) GoConsumer() *Consumer[T] {
	c := &Consumer[T]{}
	g.consumers.Add(1)
	go func() {
		defer g.consumers.Done()
		c.items = Consume(g.queue)
	}()
	return c
}

// Wait shuts the pipeline down in order: it joins all producers, closes
// the queue, then joins all consumers. It returns the producer errors
// recorded during the run, joined together, or nil if every producer
// finished cleanly.
func (g *Group[T]) Wait() error {
	g.producers.Wait()
	g.queue.Close()
	g.consumers.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
