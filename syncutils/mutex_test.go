package syncutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutex_Exclusion(t *testing.T) {
	const workers = 4
	const iterations = 10000

	var lock Mutex

	require.Equal(t, workers*iterations, runContended(workers, iterations, &lock))
}

// A standard mutex is not recursive: re-acquisition while held never
// completes (guarded by the test-only timeout).
func TestMutex_ReacquisitionBlocks(t *testing.T) {
	var lock Mutex

	lock.Lock()
	requireBlocked(t, lock.Lock)
	lock.Unlock()
}
