// Package collections implements the bulk sequence benchmark: build,
// map, filter, fold, and a fused map-filter-fold chain over a slice of
// integers, under the shared output contract.
package collections

import (
	"time"

	bench "github.com/navicore/cem3"
)

// NumElements is the reference slice length.
const NumElements = 100000

// Build returns the slice [0, n).
func Build(n int64) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return data
}

// MapDouble returns a new slice with every element doubled.
func MapDouble(data []int64) []int64 {
	out := make([]int64, len(data))
	for i, v := range data {
		out[i] = v * 2
	}
	return out
}

// FilterEvens returns the even elements of data, in order.
func FilterEvens(data []int64) []int64 {
	out := make([]int64, 0, len(data)/2)
	for _, v := range data {
		if v%2 == 0 {
			out = append(out, v)
		}
	}
	return out
}

// FoldSum returns the sum of data.
func FoldSum(data []int64) int64 {
	var total int64
	for _, v := range data {
		total += v
	}
	return total
}

// Chain triples each element, keeps the even results, and sums them,
// in a single fused pass.
func Chain(data []int64) int64 {
	var total int64
	for _, v := range data {
		if t := v * 3; t%2 == 0 {
			total += t
		}
	}
	return total
}

// Bench runs the sub-tests in order over a slice of the reference
// length and reports one result per sub-test. The build is timed as
// its own sub-test and its output is the input to the rest.
func Bench() []bench.Result {
	const n = NumElements
	sub := func(test string, value, want int64, elapsed time.Duration) bench.Result {
		return bench.Result{Suite: "collections", Test: test, Value: value, Want: want, Elapsed: elapsed}
	}

	start := time.Now()
	data := Build(n)
	rs := []bench.Result{sub("build-100k", int64(len(data)), n, time.Since(start))}

	start = time.Now()
	mapped := MapDouble(data)
	rs = append(rs, sub("map-double", int64(len(mapped)), n, time.Since(start)))

	start = time.Now()
	filtered := FilterEvens(data)
	rs = append(rs, sub("filter-evens", int64(len(filtered)), n/2, time.Since(start)))

	total, elapsed := bench.Timed(func() int64 { return FoldSum(data) })
	rs = append(rs, sub("fold-sum", total, n*(n-1)/2, elapsed))

	chained, elapsed := bench.Timed(func() int64 { return Chain(data) })
	rs = append(rs, sub("chain", chained, 3*(n/2)*(n/2-1), elapsed))

	return rs
}
