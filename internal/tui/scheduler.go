package tui

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/formcheck/internal/core/clock"
)

// taskFireMsg is delivered by the tick command of a scheduled task.
type taskFireMsg struct {
	token uint64
}

type scheduledTask struct {
	token uint64
	delay time.Duration
	fn    func()
}

// TickScheduler implements clock.Scheduler on top of tea.Tick. Tasks run inside
// Update when their tick message arrives, never on a timer goroutine, so they
// can touch model state safely.
type TickScheduler struct {
	mu     sync.Mutex
	next   uint64
	live   map[uint64]*scheduledTask
	queued []*scheduledTask
}

var _ clock.Scheduler = (*TickScheduler)(nil)

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{live: make(map[uint64]*scheduledTask)}
}

// AfterFunc registers fn to run after d. The tick command is created by the next
// call to Cmds.
func (s *TickScheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	t := &scheduledTask{token: s.next, delay: d, fn: fn}
	s.live[t.token] = t
	s.queued = append(s.queued, t)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.live, t.token)
	}
}

// Cmds drains newly scheduled tasks into tick commands. Returns nil when there
// is nothing to schedule.
func (s *TickScheduler) Cmds() tea.Cmd {
	s.mu.Lock()
	queued := s.queued
	s.queued = nil
	s.mu.Unlock()

	var cmds []tea.Cmd
	for _, t := range queued {
		if !s.isLive(t.token) {
			continue
		}
		token := t.token
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return taskFireMsg{token: token}
		}))
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Fire runs the task for token if it is still live. Canceled or already fired
// tasks are ignored.
func (s *TickScheduler) Fire(token uint64) bool {
	s.mu.Lock()
	t, ok := s.live[token]
	delete(s.live, token)
	s.mu.Unlock()

	if !ok {
		return false
	}
	t.fn()
	return true
}

// Pending returns the number of tasks that are neither fired nor canceled.
func (s *TickScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// Tokens returns the live task tokens in scheduling order.
func (s *TickScheduler) Tokens() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]uint64, 0, len(s.live))
	for token := uint64(1); token <= s.next; token++ {
		if _, ok := s.live[token]; ok {
			out = append(out, token)
		}
	}
	return out
}

func (s *TickScheduler) isLive(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[token]
	return ok
}
