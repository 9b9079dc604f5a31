// Package guarded provides a generic container that owns a single value and
// mediates all access to it through a mutual-exclusion strategy: either one
// of the syncutils lock variants or a serial execution queue.
package guarded

// Value is the contract shared by all guarded containers. All four operations
// are atomic with respect to concurrent callers: two mutations never
// interleave and Get never observes a partially applied mutation.
//
// Composing Get and Set is NOT atomic - it is two atomic operations with a
// window in between and loses updates under contention. Read-modify-write
// goes through Mutate or MutateInPlace instead.
type Value[T any] interface {
	// Get returns a copy of the current value.
	Get() T

	// Set overwrites the current value.
	Set(value T)

	// Mutate atomically replaces the current value with mutate(current).
	Mutate(mutate func(currentValue T) T)

	// MutateInPlace atomically applies mutate to the current value.
	MutateInPlace(mutate func(value *T))
}
