package syncutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCounter_WaitIsZero(t *testing.T) {
	const workers = 3

	counter := NewCounter()
	counter.Set(workers)

	for i := 0; i < workers; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			counter.Decrease()
		}()
	}

	counter.WaitIsZero()
	require.Equal(t, 0, counter.Get())
}

func TestCounter_Update(t *testing.T) {
	counter := NewCounter()

	require.Equal(t, 1, counter.Increase())
	require.Equal(t, 3, counter.Update(2))
	require.Equal(t, 2, counter.Decrease())
	require.Equal(t, 2, counter.Get())
}

func TestCounter_Set(t *testing.T) {
	counter := NewCounter()
	counter.Set(5)

	require.Equal(t, 5, counter.Set(2))
	require.Equal(t, 2, counter.Get())
}

func TestCounter_WaitIsAbove(t *testing.T) {
	counter := NewCounter()

	go func() {
		time.Sleep(10 * time.Millisecond)
		counter.Increase()
		counter.Increase()
	}()

	counter.WaitIsAbove(1)
	require.GreaterOrEqual(t, counter.Get(), 2)
}
