package syncutils

import (
	"sync"
)

// Counter is a thread-safe counter that allows callers to block until its
// value crosses a threshold. The benchmark harness uses it as its completion
// gate: the counter is set to the number of outstanding workers, every worker
// counts down once when it finishes and the harness waits for zero.
type Counter struct {
	value              int
	valueMutex         RWMutex
	valueIncreasedCond *sync.Cond
	valueDecreasedCond *sync.Cond
}

// NewCounter creates a new Counter with a value of 0.
func NewCounter() (newCounter *Counter) {
	newCounter = new(Counter)
	newCounter.valueIncreasedCond = sync.NewCond(&newCounter.valueMutex)
	newCounter.valueDecreasedCond = sync.NewCond(&newCounter.valueMutex)

	return newCounter
}

// Get returns the current value.
func (c *Counter) Get() (value int) {
	c.valueMutex.RLock()
	defer c.valueMutex.RUnlock()

	return c.value
}

// Set sets the counter to the given value and returns the previous one.
func (c *Counter) Set(newValue int) (oldValue int) {
	c.valueMutex.Lock()
	defer c.valueMutex.Unlock()

	if oldValue = c.value; newValue != oldValue {
		c.value = newValue

		if oldValue < newValue {
			c.valueIncreasedCond.Broadcast()
		} else {
			c.valueDecreasedCond.Broadcast()
		}
	}

	return oldValue
}

// Update adds delta to the counter and returns the new value.
func (c *Counter) Update(delta int) (newValue int) {
	c.valueMutex.Lock()
	defer c.valueMutex.Unlock()

	newValue = c.value + delta
	c.value = newValue

	if delta >= 1 {
		c.valueIncreasedCond.Broadcast()
	} else if delta <= -1 {
		c.valueDecreasedCond.Broadcast()
	}

	return newValue
}

// Increase increments the counter by 1 and returns the new value.
func (c *Counter) Increase() (newValue int) {
	return c.Update(1)
}

// Decrease decrements the counter by 1 and returns the new value.
func (c *Counter) Decrease() (newValue int) {
	return c.Update(-1)
}

// WaitIsZero blocks until the value is 0.
func (c *Counter) WaitIsZero() {
	c.WaitIsBelow(1)
}

// WaitIsBelow blocks until the value is below the given threshold.
func (c *Counter) WaitIsBelow(threshold int) {
	c.valueMutex.Lock()
	defer c.valueMutex.Unlock()

	for c.value >= threshold {
		c.valueDecreasedCond.Wait()
	}
}

// WaitIsAbove blocks until the value is above the given threshold.
func (c *Counter) WaitIsAbove(threshold int) {
	c.valueMutex.Lock()
	defer c.valueMutex.Unlock()

	for c.value <= threshold {
		c.valueIncreasedCond.Wait()
	}
}
