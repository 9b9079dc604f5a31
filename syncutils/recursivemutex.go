package syncutils

import (
	"github.com/petermattis/goid"
	"go.uber.org/atomic"
)

// RecursiveMutex is a mutual-exclusion lock that its holding goroutine may
// acquire multiple times. Every Lock must be matched by an Unlock and the
// lock is only released towards other goroutines once the hold depth returns
// to zero.
//
// Ownership is tracked by goroutine id. The zero value is an unlocked
// RecursiveMutex. A RecursiveMutex must not be copied after first use.
type RecursiveMutex struct {
	mutex Mutex
	owner atomic.Int64
	depth int
}

// Lock acquires the lock, blocking until it is available. If the calling
// goroutine already holds the lock, the hold depth is increased instead.
func (r *RecursiveMutex) Lock() {
	gid := goid.Get()
	if r.owner.Load() == gid {
		r.depth++

		return
	}

	r.mutex.Lock()
	r.owner.Store(gid)
	r.depth = 1
}

// Unlock undoes a single Lock call of the holding goroutine and releases the
// lock once the hold depth returns to zero. It is a run-time error if the
// calling goroutine does not hold the lock on entry to Unlock.
func (r *RecursiveMutex) Unlock() {
	if r.owner.Load() != goid.Get() {
		panic("Unlock called by goroutine that does not hold the RecursiveMutex")
	}

	// depth is only ever touched by the owner, no extra synchronization
	// needed here.
	r.depth--
	if r.depth == 0 {
		r.owner.Store(0)
		r.mutex.Unlock()
	}
}
