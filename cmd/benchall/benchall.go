// Binary benchall runs every suite in sequence and prints the
// combined BENCH line stream. It is meant to run unattended: a suite
// whose coordinator fails or panics is logged to stderr and skipped,
// the remaining suites still execute, and the process exits 0 so the
// output stays a complete, parseable stream.
package main

import (
	"log"
	"os"

	bench "github.com/navicore/cem3"
	"github.com/navicore/cem3/collections"
	"github.com/navicore/cem3/fanout"
	"github.com/navicore/cem3/fibonacci"
	"github.com/navicore/cem3/pingpong"
	"github.com/navicore/cem3/primes"
	"github.com/navicore/cem3/skynet"
)

var suites = []struct {
	name string
	run  func() ([]bench.Result, error)
}{
	{"fanout", one(fanout.Bench)},
	{"pingpong", one(pingpong.Bench)},
	{"skynet", one(skynet.Bench)},
	{"fibonacci", all(fibonacci.Bench)},
	{"primes", all(primes.Bench)},
	{"collections", all(collections.Bench)},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("benchall: ")

	for _, s := range suites {
		runSuite(s.name, s.run)
	}
}

// runSuite executes one suite, confining any coordinator fault to it.
func runSuite(name string, run func() ([]bench.Result, error)) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("%s: panic: %v", name, p)
		}
	}()
	rs, err := run()
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}
	for _, r := range rs {
		r.Emit(os.Stdout)
	}
}

func one(f func() (bench.Result, error)) func() ([]bench.Result, error) {
	return func() ([]bench.Result, error) {
		r, err := f()
		if err != nil {
			return nil, err
		}
		return []bench.Result{r}, nil
	}
}

func all(f func() []bench.Result) func() ([]bench.Result, error) {
	return func() ([]bench.Result, error) { return f(), nil }
}
