package syncutils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// requireAcquirable asserts that the given lock can be acquired within a
// second. The acquiring goroutine keeps the lock.
func requireAcquirable(t *testing.T, lock Locking) {
	t.Helper()

	acquired := make(chan struct{})
	go func() {
		lock.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(1 * time.Second):
		t.Fatal("lock could not be acquired")
	}
}

// requireBlocked asserts that the given call does not complete within the
// test-only timeout. The product itself has no timeouts; expected-hang
// patterns are only ever guarded here.
func requireBlocked(t *testing.T, blockingCall func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		blockingCall()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("expected the call to block")
	case <-time.After(100 * time.Millisecond):
	}
}

// runContended races the given number of workers on a plain integer that is
// only protected by the given lock and returns the final count.
func runContended(workers int, iterations int, lock Locking) (counter int) {
	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for j := 0; j < iterations; j++ {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}

	wg.Wait()

	return counter
}

func TestWithLock_ReleasesOnPanic(t *testing.T) {
	lock := NewBinarySemaphore()

	require.Panics(t, func() {
		WithLock(lock, func() {
			panic("failure inside the critical section")
		})
	})

	require.Equal(t, 1, lock.Available())
}

func TestWithLock_RunsUnderLock(t *testing.T) {
	var lock SpinLock

	executed := false
	WithLock(&lock, func() {
		executed = true

		requireBlocked(t, lock.Lock)
	})

	require.True(t, executed)
}
