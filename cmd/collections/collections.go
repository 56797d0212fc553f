// Binary collections runs the bulk sequence benchmark grid and prints
// one BENCH line per sub-test. It takes no flags and exits 0.
package main

import (
	"os"

	"github.com/navicore/cem3/collections"
)

func main() {
	for _, r := range collections.Bench() {
		r.Emit(os.Stdout)
	}
}
