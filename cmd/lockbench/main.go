package main

import (
	"github.com/lockbench/lockbench/bench"
	"github.com/lockbench/lockbench/logger"
)

// lockbench takes no arguments: it runs the full trial suite in its fixed
// order and always exits with code 0 - a failed correctness check is reported
// but does not abort the run.
func main() {
	log, err := logger.NewLogger("lockbench")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	bench.NewSuite(log).Run()
}
