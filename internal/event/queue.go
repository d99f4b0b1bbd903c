package event

// Queue is a FIFO of events of a single type. Drain hands every pending
// event to exactly one reader in insertion order and empties the queue.
type Queue[T any] struct {
	items []T
}

// Push appends ev.
func (q *Queue[T]) Push(ev T) {
	q.items = append(q.items, ev)
}

// Drain returns all pending events and clears the queue.
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int { return len(q.items) }

// Clear drops pending events without delivering them.
func (q *Queue[T]) Clear() { q.items = nil }
