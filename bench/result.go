package bench

import (
	"time"
)

// Result records the outcome of a single trial run.
type Result struct {
	// Strategy is the name of the mutual-exclusion strategy that was tested.
	Strategy string

	// Shape is the workload shape the workers drove.
	Shape Shape

	// Expected is workers * loop count, the value a correct strategy yields.
	Expected int64

	// Actual is the final counter value that was read after all workers
	// signaled completion.
	Actual int64

	// Elapsed is the wall-clock time from just before spawning the workers to
	// just after the final read.
	Elapsed time.Duration
}

// Passed reports whether the final counter matched the expected value, i.e.
// no increment was lost or duplicated.
func (r *Result) Passed() (passed bool) {
	return r.Actual == r.Expected
}
