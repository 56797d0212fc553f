// Package skynet implements the recursive spawn/join benchmark: a
// balanced 10-ary tree of tasks partitions the range 0..size-1 into
// disjoint subranges, each leaf yields its offset, and each parent
// sums the results of its ten children.
//
// The join is structured: a parent never completes before all ten of
// its children have completed. A fault in any subtree propagates up
// through the joins to the root rather than being dropped.
package skynet

import (
	"time"

	bench "github.com/navicore/cem3"
)

// Size is the reference leaf count.
const Size = 100000

// Expected reports the analytically known result for a tree of the
// given size: the leaves enumerate 0..size-1 exactly once, so the root
// sum is size*(size-1)/2.
func Expected(size int64) int64 { return size * (size - 1) / 2 }

// Bench runs the tree at the reference size and reports the spawn-100k
// sub-test.
func Bench() (bench.Result, error) {
	sum, elapsed, err := Run(Size)
	if err != nil {
		return bench.Result{}, err
	}
	return bench.Result{
		Suite:   "skynet",
		Test:    "spawn-100k",
		Value:   sum,
		Want:    Expected(Size),
		Elapsed: elapsed,
	}, nil
}

// Run resolves a tree of the given size, which must be a power of 10,
// and reports the root sum. Elapsed time covers the whole tree,
// spawning included.
func Run(size int64) (int64, time.Duration, error) {
	start := time.Now()
	sum, err := skynet(0, size)
	elapsed := time.Since(start)
	if err != nil {
		return 0, elapsed, err
	}
	return sum, elapsed, nil
}

func skynet(offset, size int64) (int64, error) {
	if size == 1 {
		return offset, nil
	}
	child := size / 10

	var kids [10]*bench.Handle[int64]
	for i := range kids {
		o := offset + int64(i)*child
		kids[i] = bench.Call(func() (int64, error) { return skynet(o, child) })
	}

	// Join all ten children before completing, even when one fails.
	var sum int64
	var first error
	for _, kid := range kids {
		v, err := kid.Wait()
		if err != nil && first == nil {
			first = err
		}
		sum += v
	}
	if first != nil {
		return 0, first
	}
	return sum, nil
}
