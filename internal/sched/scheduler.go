// Package sched provides cooperative, time-accumulator based timers.
// Nothing here runs on its own goroutine: a Scheduler only fires tasks
// from inside Advance, so the owning tick loop stays the single writer.
package sched

import (
	"fmt"
	"sort"
	"time"
)

// Task is a scheduled callback. It is either a one-shot (After) or a
// repeating task (Every).
type Task struct {
	id        uint64
	due       time.Duration // Scheduler time at which the task fires next
	interval  time.Duration // Zero for one-shot tasks
	fn        func()
	cancelled bool
}

// Cancel prevents the task from firing again. Safe to call more than once,
// including from inside the task's own callback.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Active returns true if the task can still fire.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler owns a simulated clock and the tasks bound to it.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	tasks  []*Task
}

// New creates a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{tasks: make([]*Task, 0, 8)}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run each time interval elapses.
// A non-positive interval is a programming error and panics.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic(fmt.Sprintf("sched: non-positive interval %v", interval))
	}
	return s.add(interval, interval, fn)
}

// After registers fn to run once after delay. A zero delay fires on the
// next Advance call.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		panic(fmt.Sprintf("sched: negative delay %v", delay))
	}
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) *Task {
	s.nextID++
	t := &Task{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by delta and fires every task that
// becomes due, in due-time order. Ties fire in registration order.
// Repeating tasks that fall behind fire once per elapsed interval.
// Tasks registered by a callback are eligible in the same Advance if
// they are already due.
func (s *Scheduler) Advance(delta time.Duration) {
	if delta < 0 {
		return
	}
	target := s.now + delta

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		if t.due > s.now {
			s.now = t.due
		}
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.cancelled = true
		}
		t.fn()
	}

	s.now = target
	s.compact()
}

// nextDue returns the earliest live task due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// compact drops cancelled tasks so finished one-shots do not accumulate.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Stop cancels every pending task. The clock keeps its value.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = s.tasks[:0]
}

// Pending returns the number of tasks that can still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// NextDue reports the time until the earliest pending task fires.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	live := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return 0, false
	}
	sort.Slice(live, func(i, j int) bool { return live[i].due < live[j].due })
	return live[0].due - s.now, true
}
