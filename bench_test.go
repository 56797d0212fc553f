package bench_test

import (
	"testing"

	bench "github.com/navicore/cem3"
)

// A very rough benchmark comparing the cost of moving values through
// the unbounded queue vs. a native buffered channel. The workload is
// intentionally minimal, so this measures more or less just the
// overhead of the primitive.

func BenchmarkQueue(b *testing.B) {
	q := bench.NewQueue[int]()
	h := bench.Call(func() (int, error) {
		var total int
		for {
			v := q.Get()
			if v == bench.Sentinel {
				return total, nil
			}
			total += v
		}
	})
	b.ResetTimer() // discount the setup time.

	for i := 0; i < b.N; i++ {
		q.Put(1)
	}
	q.Put(bench.Sentinel)
	if total, _ := h.Wait(); total != b.N {
		b.Fatalf("total: got %d, want %d", total, b.N)
	}
}

func BenchmarkChan(b *testing.B) {
	ch := make(chan int, 64)
	h := bench.Call(func() (int, error) {
		var total int
		for v := range ch {
			total += v
		}
		return total, nil
	})
	b.ResetTimer() // discount the setup time.

	for i := 0; i < b.N; i++ {
		ch <- 1
	}
	close(ch)
	if total, _ := h.Wait(); total != b.N {
		b.Fatalf("total: got %d, want %d", total, b.N)
	}
}
