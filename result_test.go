package bench

import (
	"strings"
	"testing"
	"time"
)

func TestEmit(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{
			Result{"fanout", "throughput-100k", 100000, 100000, 1503 * time.Millisecond},
			"BENCH:fanout:throughput-100k:100000:1503\n",
		},
		{
			Result{"primes", "count-10k", 1228, 1229, 7 * time.Millisecond},
			"BENCH:primes:count-10k:1228:7\nERROR: expected 1229, got 1228\n",
		},
		{
			// Sub-millisecond elapsed truncates to zero.
			Result{"skynet", "spawn-100k", 4999950000, 4999950000, 750 * time.Microsecond},
			"BENCH:skynet:spawn-100k:4999950000:0\n",
		},
	}
	for _, tc := range tests {
		var sb strings.Builder
		tc.r.Emit(&sb)
		if got := sb.String(); got != tc.want {
			t.Errorf("Emit %s:%s:\n got: %q\nwant: %q", tc.r.Suite, tc.r.Test, got, tc.want)
		}
	}
}

func TestTimed(t *testing.T) {
	v, elapsed := Timed(func() int64 {
		time.Sleep(5 * time.Millisecond)
		return 42
	})
	if v != 42 {
		t.Errorf("Timed: got %d, want 42", v)
	}
	if elapsed < 5*time.Millisecond {
		t.Errorf("Timed: elapsed %v, want at least 5ms", elapsed)
	}
}
