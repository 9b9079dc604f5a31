// Package bench drives the benchmark trials: it races a fixed number of
// workers on a guarded counter for every mutual-exclusion strategy, checks
// that no increment was lost and measures the elapsed wall-clock time.
package bench

import (
	"fmt"
	"time"

	"github.com/lockbench/lockbench/guarded"
	"github.com/lockbench/lockbench/syncutils"
)

// State describes where a Trial currently is in its lifecycle.
type State int8

const (
	// StateIdle is the state of a Trial that has not been run yet.
	StateIdle State = iota

	// StateRunning is the state while the workers are racing on the counter.
	StateRunning

	// StateAwaitingCompletion is the state while the trial blocks for the
	// completion signals of its workers.
	StateAwaitingCompletion

	// StateCompleted is the state after the final value was read.
	StateCompleted
)

// ValueFactory constructs a fresh guarded counter for a single trial run,
// together with a cleanup function that releases whatever the strategy
// allocated (e.g. the worker of a serialized queue).
type ValueFactory func() (value guarded.Value[int64], cleanup func())

// Trial executes the concurrent increment workload under a single strategy:
// Workers goroutines each apply LoopCount increments to a freshly constructed
// guarded counter, the trial waits for all completion signals and then reads
// the final value exactly once.
//
// Trials are independent: every run constructs its own guarded value and
// workers and discards them afterwards.
type Trial struct {
	// Name identifies the strategy under test.
	Name string

	// NewValue constructs the guarded counter for one run.
	NewValue ValueFactory

	// LoopCount is the number of increments every worker applies.
	LoopCount int

	// Workers is the number of goroutines racing on the counter.
	Workers int

	state State
}

// NewTrial creates a Trial for the named strategy.
func NewTrial(name string, newValue ValueFactory, loopCount int, workers int) (newTrial *Trial) {
	return &Trial{
		Name:      name,
		NewValue:  newValue,
		LoopCount: loopCount,
		Workers:   workers,
	}
}

// State returns the current lifecycle state of the Trial.
func (t *Trial) State() (state State) {
	return t.state
}

// Run executes the trial for the given workload shape and returns its Result.
// There is deliberately no timeout: a strategy that deadlocks (e.g. a
// non-recursive lock re-acquired by its holder) hangs the trial, which is the
// intended stress behavior rather than a guarded check.
func (t *Trial) Run(shape Shape) (result *Result) {
	value, cleanup := t.NewValue()
	defer cleanup()

	increment := incrementFor(shape, value)

	t.state = StateRunning
	start := time.Now()

	workersDone := syncutils.NewCounter()
	workersDone.Set(t.Workers)

	for i := 0; i < t.Workers; i++ {
		go func() {
			for j := 0; j < t.LoopCount; j++ {
				increment()
			}

			workersDone.Decrease()
		}()
	}

	t.state = StateAwaitingCompletion
	workersDone.WaitIsZero()

	finalValue := value.Get()
	elapsed := time.Since(start)

	t.state = StateCompleted

	return &Result{
		Strategy: t.Name,
		Shape:    shape,
		Expected: int64(t.Workers) * int64(t.LoopCount),
		Actual:   finalValue,
		Elapsed:  elapsed,
	}
}

// incrementFor returns the increment operation of the given workload shape,
// bound to the given counter. Both shapes are single atomic read-modify-write
// units - never a Get composed with a Set.
func incrementFor(shape Shape, value guarded.Value[int64]) (increment func()) {
	switch shape {
	case ShapeSetValue:
		return func() {
			value.Mutate(func(currentValue int64) int64 {
				return currentValue + 1
			})
		}
	case ShapeMutateValue:
		return func() {
			value.MutateInPlace(func(value *int64) {
				*value++
			})
		}
	default:
		panic(fmt.Sprintf("unknown workload shape '%d'", shape))
	}
}
