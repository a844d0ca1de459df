// Package bqueue provides a bounded blocking queue for coordinating
// producer and consumer goroutines.
//
// The central type is BoundedQueue: a fixed-capacity FIFO that is safe for
// any number of concurrent writers and readers. Put blocks while the queue
// is full, applying backpressure to fast producers; Get blocks while the
// queue is empty. Close switches the queue into a one-way drain mode in
// which no new items are accepted but everything already buffered remains
// retrievable, after which Get reports end of stream via its comma-ok
// result.
//
// The main components include:
//
//   - BoundedQueue: the synchronized fixed-capacity FIFO with blocking Put/Get,
//     non-blocking TryPut/TryGet, and the close/drain protocol
//   - Produce / ProduceFrom: producer roles, plain functions meant to be run
//     on their own goroutines over a shared queue
//   - Consume: the consumer drain loop, collecting items until end of stream
//   - Group: composition glue that owns one queue, spawns producer and
//     consumer goroutines, closes the queue once all producers are done and
//     surfaces producer failures after shutdown
//
// All blocking is intentional backpressure rather than failure; the only
// error conditions are constructing a queue with a non-positive capacity
// and putting into a queue that has already been closed.
package bqueue
