package syncutils

import (
	"sync"
)

// Semaphore is a counting semaphore. Lock takes a permit, waiting for one to
// become available, and Unlock adds a permit back. Permits carry no notion of
// ownership: an Unlock without a prior Lock is legal and increases
// availability, which is the documented behavioral difference to the mutex
// variants in this package.
type Semaphore struct {
	permits     int
	permitsCond *sync.Cond
}

// NewSemaphore creates a Semaphore with the given number of initial permits.
func NewSemaphore(permits int) (newSemaphore *Semaphore) {
	return &Semaphore{
		permits:     permits,
		permitsCond: sync.NewCond(&sync.Mutex{}),
	}
}

// NewBinarySemaphore creates a Semaphore with a single permit, configured to
// act as a lock.
func NewBinarySemaphore() (newSemaphore *Semaphore) {
	return NewSemaphore(1)
}

// Lock takes a permit, blocking the calling goroutine until one is available.
func (s *Semaphore) Lock() {
	s.permitsCond.L.Lock()
	defer s.permitsCond.L.Unlock()

	for s.permits == 0 {
		s.permitsCond.Wait()
	}

	s.permits--
}

// Unlock adds a permit and wakes a waiter. It never checks whether the caller
// holds a permit.
func (s *Semaphore) Unlock() {
	s.permitsCond.L.Lock()
	s.permits++
	s.permitsCond.L.Unlock()

	s.permitsCond.Signal()
}

// Available returns the number of permits that could currently be taken
// without blocking.
func (s *Semaphore) Available() (permits int) {
	s.permitsCond.L.Lock()
	defer s.permitsCond.L.Unlock()

	return s.permits
}
