// Binary primes runs the sequential prime-counting benchmark grid and
// prints one BENCH line per sub-test. It takes no flags and exits 0.
package main

import (
	"os"

	"github.com/navicore/cem3/primes"
)

func main() {
	for _, r := range primes.Bench() {
		r.Emit(os.Stdout)
	}
}
