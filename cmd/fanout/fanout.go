// Binary fanout runs the producer/worker-pool benchmark at the
// reference size and prints its result in the shared BENCH line
// format. It takes no flags and exits 0; a failed run is logged to
// stderr and produces no BENCH line.
package main

import (
	"log"
	"os"

	"github.com/navicore/cem3/fanout"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fanout: ")

	r, err := fanout.Bench()
	if err != nil {
		log.Print(err)
		return
	}
	r.Emit(os.Stdout)
}
