package guarded

import (
	"github.com/lockbench/lockbench/syncutils"
)

// LockedValue guards its value with a Locking instance. Every accessor holds
// the lock for the duration of the access; the deferred release covers all
// exit paths.
type LockedValue[T any] struct {
	value T
	lock  syncutils.Locking
}

// NewLockedValue creates a LockedValue around the given initial value,
// guarded by the given lock. Construction without both is impossible, so a
// LockedValue is never observed without a strategy.
func NewLockedValue[T any](initialValue T, lock syncutils.Locking) *LockedValue[T] {
	return &LockedValue[T]{
		value: initialValue,
		lock:  lock,
	}
}

// Get returns a copy of the current value.
func (l *LockedValue[T]) Get() (value T) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.value
}

// Set overwrites the current value.
func (l *LockedValue[T]) Set(value T) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.value = value
}

// Mutate atomically replaces the current value with mutate(current). The read
// and the write happen under a single acquisition of the lock.
func (l *LockedValue[T]) Mutate(mutate func(currentValue T) T) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.value = mutate(l.value)
}

// MutateInPlace atomically applies mutate to the current value.
func (l *LockedValue[T]) MutateInPlace(mutate func(value *T)) {
	l.lock.Lock()
	defer l.lock.Unlock()

	mutate(&l.value)
}
