// Package fanout implements the producer/worker-pool benchmark: one
// producer feeds a shared queue, a fixed pool of workers drains it,
// and the workers' private counts converge on a results queue.
//
// Termination is by sentinel: after the payload the producer enqueues
// exactly one sentinel per worker, so every worker observes exactly one
// sentinel regardless of how work is distributed among them. Which
// worker consumes which message is unspecified; the reported result is
// invariant under arbitrary interleaving.
package fanout

import (
	"time"

	bench "github.com/navicore/cem3"
)

// Reference configuration, shared by every language implementation of
// the suite.
const (
	NumMessages = 100000
	NumWorkers  = 10
)

// Bench runs the protocol at the reference size and reports the
// throughput-100k sub-test.
func Bench() (bench.Result, error) {
	sum, elapsed, err := Run(NumMessages, NumWorkers)
	if err != nil {
		return bench.Result{}, err
	}
	return bench.Result{
		Suite:   "fanout",
		Test:    "throughput-100k",
		Value:   sum,
		Want:    NumMessages,
		Elapsed: elapsed,
	}, nil
}

// Run distributes the messages 0..n-1 among workers concurrent
// consumers of a shared queue and reports the sum of their receive
// counts, which equals n for any valid execution. Elapsed time covers
// the producing of the first message through the completion of the
// last worker.
//
// A worker fault is reported after the workers are joined; if the
// fault kept a sentinel from being consumed, Run suspends instead, as
// the protocol defines no recovery from a sentinel mismatch.
func Run(n, workers int) (int64, time.Duration, error) {
	work := bench.NewQueue[int64]()
	results := bench.NewQueue[int64]()

	var pool bench.Pool
	for i := 0; i < workers; i++ {
		pool.Go(func() error {
			var count int64
			for {
				v := work.Get()
				if v == bench.Sentinel {
					results.Put(count)
					return nil
				}
				count++
			}
		})
	}

	start := time.Now()

	for i := 0; i < n; i++ {
		work.Put(int64(i))
	}
	for i := 0; i < workers; i++ {
		work.Put(bench.Sentinel)
	}

	var sum int64
	for i := 0; i < workers; i++ {
		sum += results.Get()
	}
	err := pool.Wait()
	elapsed := time.Since(start)

	if err != nil {
		return 0, elapsed, err
	}
	return sum, elapsed, nil
}
