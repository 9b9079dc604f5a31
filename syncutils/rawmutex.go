package syncutils

// RawMutex is the thinnest lock in this package: a single-token channel with
// no lazy setup. Init must be called before first use; Lock and Unlock on an
// uninitialized RawMutex panic. It is not recursive.
type RawMutex struct {
	token chan struct{}
}

// Init prepares the mutex for use. It must be called exactly once, before any
// other method.
func (r *RawMutex) Init() {
	r.token = make(chan struct{}, 1)
}

// Lock blocks the calling goroutine until the token could be placed.
func (r *RawMutex) Lock() {
	if r.token == nil {
		panic("Lock called on uninitialized RawMutex")
	}

	r.token <- struct{}{}
}

// Unlock takes the token back out. It is a run-time error if the lock is not
// held on entry to Unlock.
func (r *RawMutex) Unlock() {
	if r.token == nil {
		panic("Unlock called on uninitialized RawMutex")
	}

	select {
	case <-r.token:
	default:
		panic("Unlock called on unlocked RawMutex")
	}
}
