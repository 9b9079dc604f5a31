package bench

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lockbench/lockbench/guarded"
	"github.com/lockbench/lockbench/serialqueue"
	"github.com/lockbench/lockbench/syncutils"
)

const (
	// DefaultLoopCount is the number of increments every worker applies.
	DefaultLoopCount = 300000

	// DefaultWorkers is the number of goroutines racing on the counter.
	DefaultWorkers = 3
)

// Suite runs the full set of mutual-exclusion strategies in a fixed order and
// reports one block per trial.
type Suite struct {
	log       *zap.SugaredLogger
	loopCount int
	workers   int
	shapes    []Shape
}

// Option configures a Suite.
type Option func(*Suite)

// WithLoopCount overrides the number of increments per worker.
func WithLoopCount(loopCount int) Option {
	return func(s *Suite) {
		s.loopCount = loopCount
	}
}

// WithWorkers overrides the number of concurrent workers per trial.
func WithWorkers(workers int) Option {
	return func(s *Suite) {
		s.workers = workers
	}
}

// WithShapes overrides the workload shapes every trial is run with.
func WithShapes(shapes ...Shape) Option {
	return func(s *Suite) {
		s.shapes = shapes
	}
}

// NewSuite creates a Suite that reports through the given logger. By default
// it runs DefaultWorkers x DefaultLoopCount increments and exercises only the
// ShapeSetValue workload (ShapeMutateValue is available via WithShapes).
func NewSuite(log *zap.SugaredLogger, opts ...Option) (newSuite *Suite) {
	newSuite = &Suite{
		log:       log,
		loopCount: DefaultLoopCount,
		workers:   DefaultWorkers,
		shapes:    []Shape{ShapeSetValue},
	}

	for _, opt := range opts {
		opt(newSuite)
	}

	return newSuite
}

// Trials returns fresh trials for all strategies in their fixed benchmark
// order.
func (s *Suite) Trials() (trials []*Trial) {
	return []*Trial{
		s.newLockTrial("spin-lock", func() syncutils.Locking {
			return new(syncutils.SpinLock)
		}),
		s.newLockTrial("monitor", func() syncutils.Locking {
			return syncutils.NewMonitor(new(int64))
		}),
		s.newLockTrial("raw mutex", func() syncutils.Locking {
			rawMutex := new(syncutils.RawMutex)
			rawMutex.Init()

			return rawMutex
		}),
		s.newLockTrial("standard mutex", func() syncutils.Locking {
			return new(syncutils.Mutex)
		}),
		s.newLockTrial("recursive mutex", func() syncutils.Locking {
			return new(syncutils.RecursiveMutex)
		}),
		s.newLockTrial("binary semaphore", func() syncutils.Locking {
			return syncutils.NewBinarySemaphore()
		}),
		s.newQueueTrial("serialized queue"),
	}
}

// Run executes every trial in order and returns the collected results. A
// failed correctness check is reported and the suite moves on to the next
// trial; nothing is ever retried or aborted.
func (s *Suite) Run() (results []*Result) {
	for _, trial := range s.Trials() {
		s.log.Infof("strategy: %s", trial.Name)

		for _, shape := range s.shapes {
			result := trial.Run(shape)
			results = append(results, result)

			if result.Passed() {
				s.log.Infof("  %s: PASS (%.6fs)", result.Shape, result.Elapsed.Seconds())
			} else {
				s.log.Errorf("  %s: FAIL - got %d, expected %d (%.6fs)", result.Shape, result.Actual, result.Expected, result.Elapsed.Seconds())
			}
		}
	}

	return results
}

// newLockTrial builds a trial whose counter is guarded by a lock variant. The
// lock is constructed freshly for every run.
func (s *Suite) newLockTrial(name string, newLock func() syncutils.Locking) (newTrial *Trial) {
	return NewTrial(name, func() (guarded.Value[int64], func()) {
		return guarded.NewLockedValue[int64](0, newLock()), func() {}
	}, s.loopCount, s.workers)
}

// newQueueTrial builds a trial whose counter is guarded by a trial-scoped
// serialized execution queue. The queue's worker is released when the run is
// done.
func (s *Suite) newQueueTrial(name string) (newTrial *Trial) {
	return NewTrial(name, func() (guarded.Value[int64], func()) {
		executor, err := serialqueue.New(name)
		if err != nil {
			panic(errors.Wrap(err, "failed to construct serialized-queue strategy"))
		}

		return guarded.NewQueuedValue[int64](0, executor), executor.ShutdownGracefully
	}, s.loopCount, s.workers)
}
