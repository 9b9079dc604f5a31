package syncutils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecursiveMutex_Reentrant(t *testing.T) {
	var lock RecursiveMutex

	done := make(chan struct{})
	go func() {
		lock.Lock()
		lock.Lock()
		lock.Unlock()
		lock.Unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("recursive acquisition deadlocked")
	}

	requireAcquirable(t, &lock)
}

func TestRecursiveMutex_ReleasedOnlyAtDepthZero(t *testing.T) {
	var lock RecursiveMutex

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		lock.Lock()
		lock.Lock()
		lock.Unlock()
		close(held)

		<-release
		lock.Unlock()
	}()

	<-held

	// depth is still 1, other goroutines must not get in
	requireBlocked(t, func() {
		lock.Lock()
		lock.Unlock()
	})

	close(release)
}

func TestRecursiveMutex_UnlockByNonOwnerPanics(t *testing.T) {
	var lock RecursiveMutex

	lock.Lock()
	defer lock.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		assert.Panics(t, lock.Unlock)
	}()

	wg.Wait()
}

func TestRecursiveMutex_Exclusion(t *testing.T) {
	const workers = 4
	const iterations = 10000

	var lock RecursiveMutex

	require.Equal(t, workers*iterations, runContended(workers, iterations, &lock))
}
