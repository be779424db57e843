package clock

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled one-shot task, zero is never issued
type TaskID uint64

type task struct {
	id  TaskID
	due time.Duration
	fn  func()
}

// Scheduler runs one-shot tasks once enough game time has elapsed
// Time only moves through Advance, so pausing the caller pauses the scheduler
// Single-threaded: Advance, Schedule and Cancel must be called from the tick loop
type Scheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated game time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Schedule runs fn after delay of game time; a non-positive delay fires on the next Advance
func (s *Scheduler) Schedule(delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, due: s.now + delay, fn: fn})
	return s.nextID
}

// Cancel drops a pending task without running it
// Returns false if the task already ran or was never scheduled
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of tasks waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves game time forward and runs every task now due, earliest first
// Tasks scheduled by a running task wait for a later Advance
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	var due, keep []task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.tasks = keep

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
	return len(due)
}
