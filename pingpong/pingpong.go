// Package pingpong implements the two-party round-trip benchmark: an
// initiator and a responder exchange a token over two one-directional
// queues in strict alternating lock-step, so at most one value is ever
// in flight.
package pingpong

import (
	"fmt"
	"time"

	bench "github.com/navicore/cem3"
)

// NumRoundTrips is the reference round-trip count.
const NumRoundTrips = 100000

// Bench runs the protocol at the reference size and reports the
// roundtrip-100k sub-test.
func Bench() (bench.Result, error) {
	trips, elapsed, err := Run(NumRoundTrips)
	if err != nil {
		return bench.Result{}, err
	}
	return bench.Result{
		Suite:   "pingpong",
		Test:    "roundtrip-100k",
		Value:   trips,
		Want:    NumRoundTrips,
		Elapsed: elapsed,
	}, nil
}

// Run completes n strict round trips between the initiator (run on the
// calling goroutine) and a spawned responder, and reports the number
// of round trips whose echo arrived intact, which equals n for any
// valid execution. The initiator does not send round trip i+1 until it
// has received round trip i's echo.
func Run(n int) (int64, time.Duration, error) {
	ping := bench.NewQueue[int64]()
	pong := bench.NewQueue[int64]()

	start := time.Now()

	responder := bench.Run(func() {
		for i := 0; i < n; i++ {
			pong.Put(ping.Get())
		}
	})

	var trips int64
	var bad error
	for i := 0; i < n; i++ {
		ping.Put(int64(i))
		if echo := pong.Get(); echo != int64(i) {
			if bad == nil {
				bad = fmt.Errorf("round trip %d echoed %d", i, echo)
			}
			continue
		}
		trips++
	}

	_, err := responder.Wait()
	elapsed := time.Since(start)

	if err == nil {
		err = bad
	}
	if err != nil {
		return 0, elapsed, err
	}
	return trips, elapsed, nil
}
