// Package clock provides the scheduling seam used for deferred UI work such as
// auto-dismissing a banner.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs fn once after d. The returned cancel func stops the task if it
// has not fired yet; calling it after the task ran is a no-op.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Real schedules tasks on the runtime timer. Callbacks run on their own goroutine.
type Real struct{}

func (Real) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

type task struct {
	seq      uint64
	due      time.Duration
	fn       func()
	canceled bool
}

// Manual is a Scheduler whose time only moves when Advance is called. Tasks run
// synchronously inside Advance in due order, ties broken by scheduling order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*task
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &task{seq: m.seq, due: m.now + d, fn: fn}
	m.tasks = append(m.tasks, t)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		t.canceled = true
	}
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that are neither fired nor canceled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Advance moves time forward by d and runs every task that became due. Tasks
// scheduled by a running task are picked up if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		m.mu.Unlock()

		next.fn()
	}
}

// popDue removes and returns the earliest live task due at or before target.
// Canceled tasks are dropped along the way. Caller holds m.mu.
func (m *Manual) popDue(target time.Duration) *task {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	m.tasks = live

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})

	if len(m.tasks) == 0 || m.tasks[0].due > target {
		return nil
	}

	t := m.tasks[0]
	m.tasks = m.tasks[1:]
	return t
}
