// Package fibonacci implements the sequential Fibonacci benchmark.
// It has no coordination protocol; it exists to exercise call overhead
// and integer arithmetic under the shared output contract.
package fibonacci

import bench "github.com/navicore/cem3"

// Naive computes fib(n) by unmemoized double recursion.
func Naive(n int64) int64 {
	if n < 2 {
		return n
	}
	return Naive(n-1) + Naive(n-2)
}

// Fast computes fib(n) iteratively.
func Fast(n int64) int64 {
	if n < 2 {
		return n
	}
	a, b := int64(0), int64(1)
	for i := int64(1); i < n; i++ {
		a, b = b, a+b
	}
	return b
}

// The fixed sub-test grid shared by every language implementation.
var subtests = []struct {
	name string
	n    int64
	reps int
	want int64
	f    func(int64) int64
}{
	{"fib-naive-30", 30, 1, 832040, Naive},
	{"fib-naive-35", 35, 1, 9227465, Naive},
	{"fib-fast-30", 30, 1, 832040, Fast},
	{"fib-fast-50", 50, 1, 12586269025, Fast},
	{"fib-fast-70", 70, 1, 190392490709135, Fast},
	{"fib-naive-20-x1000", 20, 1000, 6765, Naive},
	{"fib-fast-20-x1000", 20, 1000, 6765, Fast},
}

// Bench runs the sub-test grid in order and reports one result per
// sub-test.
func Bench() []bench.Result {
	rs := make([]bench.Result, 0, len(subtests))
	for _, st := range subtests {
		v, elapsed := bench.Timed(func() int64 {
			var r int64
			for i := 0; i < st.reps; i++ {
				r = st.f(st.n)
			}
			return r
		})
		rs = append(rs, bench.Result{
			Suite:   "fibonacci",
			Test:    st.name,
			Value:   v,
			Want:    st.want,
			Elapsed: elapsed,
		})
	}
	return rs
}
