package guarded

import (
	"github.com/lockbench/lockbench/serialqueue"
)

// QueuedValue guards its value by expressing every access as a unit of work
// on a dedicated serial Executor. Since only one unit runs at a time, no lock
// is taken anywhere.
type QueuedValue[T any] struct {
	value    T
	executor *serialqueue.Executor
}

// NewQueuedValue creates a QueuedValue around the given initial value whose
// accesses run on the given executor. The executor is owned by the caller and
// must be dedicated to this value.
func NewQueuedValue[T any](initialValue T, executor *serialqueue.Executor) *QueuedValue[T] {
	return &QueuedValue[T]{
		value:    initialValue,
		executor: executor,
	}
}

// Get returns a copy of the current value.
func (q *QueuedValue[T]) Get() (value T) {
	q.executor.ExecuteSync(func() {
		value = q.value
	})

	return value
}

// Set overwrites the current value.
func (q *QueuedValue[T]) Set(value T) {
	q.executor.ExecuteSync(func() {
		q.value = value
	})
}

// Mutate atomically replaces the current value with mutate(current).
func (q *QueuedValue[T]) Mutate(mutate func(currentValue T) T) {
	q.executor.ExecuteSync(func() {
		q.value = mutate(q.value)
	})
}

// MutateInPlace atomically applies mutate to the current value.
func (q *QueuedValue[T]) MutateInPlace(mutate func(value *T)) {
	q.executor.ExecuteSync(func() {
		mutate(&q.value)
	})
}
