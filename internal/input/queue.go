package input

import (
	"sync"
)

// Queue is an unbounded FIFO of actions with one producer (the Reader) and
// one consumer (the timer loop). The consumer only ever polls it.
type Queue struct {
	mu      sync.Mutex
	actions []Action
	closed  bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a to the tail of the queue. It returns false once the queue
// has been closed, telling the producer to stop.
func (q *Queue) Push(a Action) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.actions = append(q.actions, a)
	return true
}

// TryPop removes and returns the head of the queue without waiting.
// The second result is false when the queue is empty.
func (q *Queue) TryPop() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.actions) == 0 {
		return None, false
	}
	a := q.actions[0]
	q.actions = q.actions[1:]
	return a, true
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}

// Close drops the consuming end. Pending actions are discarded and later
// pushes are refused.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.actions = nil
}
