// Package bench provides the shared plumbing for the cem3 benchmark
// suite: an unbounded FIFO [Queue] used as the sole synchronization
// mechanism between tasks, spawn/join helpers ([Call], [Pool]) whose
// results are observed exactly once by the awaiting task, and the
// fixed-format result reporting every benchmark binary emits.
//
// Each benchmark implementation in this repository, regardless of
// language, prints one line per sub-test:
//
//	BENCH:<suite>:<test>:<result>:<elapsed-ms>
//
// and, when a computed result differs from its analytically known
// value, an additional diagnostic:
//
//	ERROR: expected <want>, got <got>
//
// Tools that compare implementations across languages parse only these
// two line shapes.
package bench

import (
	"fmt"
	"io"
	"time"
)

// Sentinel is the reserved message value meaning "no more input" on a
// work queue. It is never a legitimate payload.
const Sentinel = -1

// A Result records the outcome of one timed sub-test.
type Result struct {
	Suite   string        // fixed per harness, e.g. "fanout"
	Test    string        // fixed per sub-test, e.g. "throughput-100k"
	Value   int64         // the computed result
	Want    int64         // the analytically known expected value
	Elapsed time.Duration // wall time for the timed protocol
}

// OK reports whether the computed value matches the expected one.
func (r Result) OK() bool { return r.Value == r.Want }

// Emit writes the BENCH line for r to w, followed by a mismatch
// diagnostic if the computed value differs from the expected one.
// Elapsed time is truncated to whole milliseconds.
func (r Result) Emit(w io.Writer) {
	fmt.Fprintf(w, "BENCH:%s:%s:%d:%d\n", r.Suite, r.Test, r.Value, r.Elapsed.Milliseconds())
	if !r.OK() {
		fmt.Fprintf(w, "ERROR: expected %d, got %d\n", r.Want, r.Value)
	}
}

// Timed invokes f and reports its result together with the wall time f
// took, measured on the monotonic clock.
func Timed(f func() int64) (int64, time.Duration) {
	start := time.Now()
	v := f()
	return v, time.Since(start)
}
