package syncutils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitor_SharedTokenExcludes(t *testing.T) {
	token := new(int64)
	first := NewMonitor(token)
	second := NewMonitor(token)

	first.Lock()
	requireBlocked(t, func() {
		second.Lock()
		second.Unlock()
	})
	first.Unlock()
}

func TestMonitor_DistinctTokensAreIndependent(t *testing.T) {
	first := NewMonitor(new(int64))
	second := NewMonitor(new(int64))

	first.Lock()
	requireAcquirable(t, second)
	first.Unlock()
}

func TestMonitor_UnlockWithoutLockPanics(t *testing.T) {
	monitor := NewMonitor(new(int64))

	require.Panics(t, monitor.Unlock)
}

// Every worker creates its own Monitor instance over the shared token - the
// exclusion scope is the token, not the instance.
func TestMonitor_Exclusion(t *testing.T) {
	const workers = 4
	const iterations = 10000

	token := new(int64)

	var wg sync.WaitGroup
	counter := 0

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			monitor := NewMonitor(token)
			for j := 0; j < iterations; j++ {
				monitor.Lock()
				counter++
				monitor.Unlock()
			}
		}()
	}

	wg.Wait()

	require.Equal(t, workers*iterations, counter)
}
