package bench

import (
	"fmt"
	"sync"
)

// A Task function is the basic unit of work in a [Pool]. The first
// non-nil error reported by a task is returned from the pool's Wait.
type Task func() error

// A Handle tracks a single spawned task whose result is observed
// exactly once, by whichever caller first invokes Wait. A task that
// panics reports the panic as an error rather than crashing the
// process, so a fault always reaches the awaiting task.
type Handle[T any] struct {
	outc chan outcome[T]
	out  outcome[T]
}

type outcome[T any] struct {
	val T
	err error
}

// Call starts task in a new goroutine and returns a handle to its
// result. The caller must invoke Wait to join the task and observe the
// value or error it reports.
func Call[T any](task func() (T, error)) *Handle[T] {
	// N.B. The channel is closed by Wait.
	outc := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				outc <- outcome[T]{err: fmt.Errorf("task panicked: %v", p)}
			}
		}()
		v, err := task()
		outc <- outcome[T]{val: v, err: err}
	}()
	return &Handle[T]{outc: outc}
}

// Run starts task in a new goroutine and returns a handle that joins
// it. The error reported by Wait is non-nil only if the task panicked.
func Run(task func()) *Handle[struct{}] {
	return Call(func() (struct{}, error) { task(); return struct{}{}, nil })
}

// Wait blocks until the task tracked by h has completed and returns
// the value and error it reported. Subsequent calls return the same
// pair.
func (h *Handle[T]) Wait() (T, error) {
	if out, ok := <-h.outc; ok {
		// First observation: record the outcome, then close the
		// channel (in that order) so later calls fall through.
		h.out = out
		close(h.outc)
	}
	return h.out.val, h.out.err
}

// A Pool manages a flat collection of cooperating goroutines. Add
// tasks with Go, then call Wait to join them all. The first non-nil
// error reported by any task is returned from Wait; a panicking task
// reports a panic error instead of crashing the process. A zero Pool
// is ready for use, but must not be copied after first use.
type Pool struct {
	wg sync.WaitGroup

	μ   sync.Mutex
	err error // first error reported by a task
}

// Go runs task in a new goroutine in p.
func (p *Pool) Go(task Task) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				p.report(fmt.Errorf("task panicked: %v", r))
			}
		}()
		if err := task(); err != nil {
			p.report(err)
		}
	}()
}

func (p *Pool) report(err error) {
	p.μ.Lock()
	defer p.μ.Unlock()
	if p.err == nil {
		p.err = err
	}
}

// Wait blocks until every goroutine added to p has returned, and
// reports the first non-nil error any of them produced.
func (p *Pool) Wait() error {
	p.wg.Wait()
	p.μ.Lock()
	defer p.μ.Unlock()
	return p.err
}
