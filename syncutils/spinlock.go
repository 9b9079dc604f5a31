package syncutils

import (
	"runtime"

	"go.uber.org/atomic"
)

// spinBudget is the number of acquisition attempts before the processor is
// yielded to the scheduler.
const spinBudget = 16

// SpinLock is a user-space test-and-set lock. It busy-waits for a short
// budget of CAS attempts before yielding, which keeps the overhead of short
// critical sections below that of a blocking mutex. It is not fair and not
// recursive.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be copied after
// first use.
type SpinLock struct {
	state atomic.Int32
}

// Lock blocks the calling goroutine until the lock is acquired.
func (s *SpinLock) Lock() {
	for {
		for i := 0; i < spinBudget; i++ {
			if s.state.CAS(0, 1) {
				return
			}
		}

		runtime.Gosched()
	}
}

// Unlock releases the lock. It is a run-time error if the lock is not held on
// entry to Unlock.
func (s *SpinLock) Unlock() {
	if !s.state.CAS(1, 0) {
		panic("Unlock called on unlocked SpinLock")
	}
}
