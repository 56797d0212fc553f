// Binary fibonacci runs the sequential Fibonacci benchmark grid and
// prints one BENCH line per sub-test. It takes no flags and exits 0.
package main

import (
	"os"

	"github.com/navicore/cem3/fibonacci"
)

func main() {
	for _, r := range fibonacci.Bench() {
		r.Emit(os.Stdout)
	}
}
