package bench

import "sync"

// A Queue is an unbounded FIFO queue of values, safe for concurrent
// use. Put appends to the tail and never blocks; Get removes the head,
// suspending the caller until a value is available. Values are
// delivered strictly in insertion order per queue.
//
// A Queue defines no close or error signal: a consumer that calls Get
// on a queue that will never be filled again suspends forever. The
// harness protocols terminate consumers with [Sentinel] values instead,
// and a sentinel/consumer count mismatch is a protocol violation that
// hangs by design rather than failing fast.
type Queue[T any] struct {
	μ     sync.Mutex
	ready sync.Cond // signaled when vals becomes non-empty
	vals  []T
	head  int // index of the current head within vals
}

// NewQueue constructs a new empty queue.
func NewQueue[T any]() *Queue[T] {
	q := new(Queue[T])
	q.ready.L = &q.μ
	return q
}

// Put appends v to the tail of the queue. It never blocks.
func (q *Queue[T]) Put(v T) {
	q.μ.Lock()
	defer q.μ.Unlock()
	q.vals = append(q.vals, v)
	q.ready.Signal()
}

// Get removes and returns the head of the queue, blocking until a
// value is available.
func (q *Queue[T]) Get() T {
	q.μ.Lock()
	defer q.μ.Unlock()
	for q.head == len(q.vals) {
		q.ready.Wait()
	}
	v := q.vals[q.head]
	var zero T
	q.vals[q.head] = zero // drop the reference so it can be collected
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > len(q.vals)/2 {
		n := copy(q.vals, q.vals[q.head:])
		q.vals = q.vals[:n]
		q.head = 0
	}
	return v
}

// Len reports the number of values currently queued.
func (q *Queue[T]) Len() int {
	q.μ.Lock()
	defer q.μ.Unlock()
	return len(q.vals) - q.head
}
