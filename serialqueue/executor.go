// Package serialqueue provides a dedicated serial execution context: a
// goroutine pool with exactly one worker. Everything funneled through one
// Executor runs strictly one unit at a time, so mutual exclusion is
// structural rather than lock-based.
package serialqueue

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/lockbench/lockbench/syncutils"
)

// Executor executes submitted units of work sequentially on a single,
// pre-allocated worker goroutine.
//
// Ordering: a caller of ExecuteSync always observes its own units in program
// order because submission is synchronous. The order between units submitted
// by different goroutines is the wakeup order of the underlying pool and is
// not separately guaranteed.
type Executor struct {
	name         string
	pool         *ants.Pool
	pendingUnits *syncutils.Counter
	stopped      atomic.Bool
	shutdownOnce sync.Once
}

// New creates an Executor with a single worker.
func New(name string) (newExecutor *Executor, err error) {
	pool, err := ants.NewPool(1, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create worker of executor '%s'", name)
	}

	return &Executor{
		name:         name,
		pool:         pool,
		pendingUnits: syncutils.NewCounter(),
	}, nil
}

// ExecuteSync submits the given unit of work to the worker and blocks the
// calling goroutine until the unit has run to completion. Submitting to a
// shut down Executor panics.
func (e *Executor) ExecuteSync(unit func()) {
	if e.stopped.Load() {
		panic(errors.Newf("executor '%s' is shut down", e.name))
	}

	e.pendingUnits.Increase()

	done := make(chan struct{})
	if antsErr := e.pool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("recovered from panic in Executor: %s %s", r, debug.Stack())
			}

			e.pendingUnits.Decrease()
			close(done)
		}()

		unit()
	}); antsErr != nil {
		e.pendingUnits.Decrease()

		panic(errors.Wrapf(antsErr, "failed to submit unit of work to executor '%s'", e.name))
	}

	<-done
}

// Pending returns the number of submitted units of work that have not run to
// completion yet.
func (e *Executor) Pending() (pendingUnits int) {
	return e.pendingUnits.Get()
}

// Name returns the name of the Executor.
func (e *Executor) Name() (name string) {
	return e.name
}

// WorkerCount returns the number of workers of the Executor (always 1).
func (e *Executor) WorkerCount() (workerCount int) {
	return e.pool.Cap()
}

// Shutdown stops accepting new units and releases the worker without waiting
// for units that are still executing (see ShutdownGracefully for a method
// that waits).
func (e *Executor) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.stopped.Store(true)

		go e.pool.Release()
	})
}

// ShutdownGracefully stops accepting new units, waits for all submitted units
// to run to completion and then releases the worker.
func (e *Executor) ShutdownGracefully() {
	e.shutdownOnce.Do(func() {
		e.stopped.Store(true)

		e.pendingUnits.WaitIsZero()
		e.pool.Release()
	})
}
