// Package syncutils provides the mutual-exclusion primitives that are
// benchmarked by this repository: a common Locking capability and several
// variants with deliberately different semantics (spinning, blocking,
// recursive, monitor-style and semaphore-based locking).
package syncutils

// Locking is the capability shared by all mutual-exclusion variants.
//
// Lock blocks the calling goroutine until the lock is held exclusively.
// Unlock releases the lock and is only valid while the lock is held (the
// Semaphore variant is the documented exception). Unless a variant is
// explicitly recursive, re-acquiring a held lock from the holding goroutine
// blocks forever.
type Locking interface {
	Lock()
	Unlock()
}

// WithLock executes the given function while holding the given lock. The lock
// is released on every exit path, including a panicking f.
func WithLock(lock Locking, f func()) {
	lock.Lock()
	defer lock.Unlock()

	f()
}
