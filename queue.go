package logq

import "sync"

// Queue is the unbounded FIFO channel between logging callers and the
// single writer goroutine. Any number of producers may call Enqueue
// concurrently; exactly one consumer calls Dequeue. Delivery order is
// the order in which Enqueue calls acquire the internal lock, and that
// order is the only ordering guarantee the facility makes.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Entry
	closed bool
}

// NewQueue returns an empty open queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends e to the queue. It never blocks on I/O or capacity.
// It reports false if the queue has been closed, in which case the
// entry is discarded.
func (q *Queue) Enqueue(e Entry) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, e)
	q.cond.Signal()
	return true
}

// Dequeue removes and returns the oldest entry, blocking while the
// queue is empty. After Close it keeps returning buffered entries and
// reports ok=false only once everything has been drained.
func (q *Queue) Dequeue() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return Entry{}, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// Let the backing array go once drained so a burst does not
		// pin its peak allocation for the life of the queue.
		q.items = nil
	}
	return e, true
}

// Close marks the queue as complete. Buffered entries stay readable;
// later Enqueue calls are rejected. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Len reports the number of buffered entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
