package training

import (
	"context"
	"sync"
	"sync/atomic"
)

// Task is one pending training round. Version is reserved at enqueue time;
// the round's input is implicitly the full image store at scan time.
type Task struct {
	Version int64
}

// Queue is an unbounded FIFO of training tasks: many producers, exactly one
// consumer. It also owns version assignment: Enqueue reserves the next
// version from an internal counter, so two concurrent registrations can
// never compute the same version. A version handed out is never reused,
// even when its round later fails; failed rounds leave gaps.
type Queue struct {
	next atomic.Int64

	mu    sync.Mutex
	tasks []Task

	wake    chan struct{}
	pending sync.WaitGroup
}

// NewQueue creates a queue whose version counter continues from
// lastVersion, the registry's maximum published version at startup.
func NewQueue(lastVersion int64) *Queue {
	q := &Queue{wake: make(chan struct{}, 1)}
	q.next.Store(lastVersion)
	return q
}

// Enqueue reserves the next version, appends a task for it, and returns the
// task. It never blocks and never fails.
func (q *Queue) Enqueue() Task {
	task := Task{Version: q.next.Add(1)}
	q.pending.Add(1)

	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return task
}

// Dequeue blocks until a task is available or the context is done.
func (q *Queue) Dequeue(ctx context.Context) (Task, error) {
	for {
		q.mu.Lock()
		if len(q.tasks) > 0 {
			task := q.tasks[0]
			q.tasks = q.tasks[1:]
			q.mu.Unlock()
			return task, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Task{}, ctx.Err()
		case <-q.wake:
		}
	}
}

// Complete marks the most recently dequeued task finished. Bookkeeping for
// Wait only; versioning does not depend on it.
func (q *Queue) Complete() {
	q.pending.Done()
}

// Wait blocks until every enqueued task has been completed.
func (q *Queue) Wait() {
	q.pending.Wait()
}

// Len reports the number of queued, not yet dequeued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
