// Package primes implements the sequential prime-counting benchmark
// by trial division, under the shared output contract.
package primes

import bench "github.com/navicore/cem3"

// IsPrime reports whether n is prime, by trial division over the odd
// candidates up to √n.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Count reports the number of primes in [2, limit].
func Count(limit int64) int64 {
	var count int64
	for n := int64(2); n <= limit; n++ {
		if IsPrime(n) {
			count++
		}
	}
	return count
}

var subtests = []struct {
	name  string
	limit int64
	want  int64
}{
	{"count-10k", 10000, 1229},
	{"count-100k", 100000, 9592},
}

// Bench runs the sub-test grid in order and reports one result per
// sub-test.
func Bench() []bench.Result {
	rs := make([]bench.Result, 0, len(subtests))
	for _, st := range subtests {
		v, elapsed := bench.Timed(func() int64 { return Count(st.limit) })
		rs = append(rs, bench.Result{
			Suite:   "primes",
			Test:    st.name,
			Value:   v,
			Want:    st.want,
			Elapsed: elapsed,
		})
	}
	return rs
}
