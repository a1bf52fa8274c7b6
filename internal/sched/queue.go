// Package sched provides a tick-granularity delayed-task queue for game
// sessions. Games schedule callbacks a number of simulation ticks in the
// future (Simon pad lighting, Memory flip-back, Connect Four AI moves,
// Breakout re-serve) and cancel them all in one call when the session
// resets, so no stale callback can fire into a fresh session.
//
// The queue is advanced only from Game.Step, which keeps all state
// transitions on the single simulation goroutine.
package sched

import "sort"

// Task is a pending callback. The zero value is not usable; obtain tasks
// from Queue.After.
type Task struct {
	id        uint64
	due       uint64
	fn        func()
	cancelled bool
}

// Cancelled reports whether the task was cancelled before firing.
func (t *Task) Cancelled() bool {
	return t.cancelled
}

// Queue runs delayed callbacks on a tick timeline. Not safe for
// concurrent use; callers drive it from a single goroutine.
type Queue struct {
	now    uint64
	nextID uint64
	tasks  []*Task
}

// NewQueue creates an empty queue at tick zero.
func NewQueue() *Queue {
	return &Queue{}
}

// Now returns the current tick of the queue.
func (q *Queue) Now() uint64 {
	return q.now
}

// Pending returns the number of scheduled, not yet cancelled tasks.
func (q *Queue) Pending() int {
	n := 0
	for _, t := range q.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// After schedules fn to run delay ticks from now. A delay of 0 fires on
// the next Tick. The returned task can be cancelled individually.
func (q *Queue) After(delay uint64, fn func()) *Task {
	q.nextID++
	t := &Task{
		id:  q.nextID,
		due: q.now + delay,
		fn:  fn,
	}
	q.tasks = append(q.tasks, t)
	return t
}

// Cancel marks a single task as cancelled. Cancelling a nil or already
// fired task is a no-op.
func (q *Queue) Cancel(t *Task) {
	if t != nil {
		t.cancelled = true
	}
}

// CancelAll drops every pending task. Sessions call this on reset so the
// new session starts with a clean timeline.
func (q *Queue) CancelAll() {
	for _, t := range q.tasks {
		t.cancelled = true
	}
	q.tasks = nil
}

// Tick advances the timeline by one tick and runs every task that has
// come due, in scheduling order. Callbacks may schedule new tasks; those
// run on later ticks, never during the same Tick call.
func (q *Queue) Tick() {
	q.now++

	var due []*Task
	var rest []*Task
	for _, t := range q.tasks {
		switch {
		case t.cancelled:
			// drop
		case t.due <= q.now:
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	q.tasks = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	for _, t := range due {
		if !t.cancelled {
			t.fn()
		}
	}
}
