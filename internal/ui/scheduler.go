package ui

import (
	"log"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"emojied/internal/interaction"
)

// Scheduler runs timer callbacks on the Bubble Tea update loop rather than
// on a timer goroutine, so services never see concurrent access. The
// elapsed timer is turned into a timerFiredMsg and the callback runs when
// Update handles it.
type Scheduler struct {
	mu     sync.Mutex
	send   func(tea.Msg)
	nextID uint64
	timers map[uint64]*teaTimer
}

type teaTimer struct {
	sched *Scheduler
	id    uint64
	t     *time.Timer
	fn    func()
}

// NewScheduler creates a scheduler. SetProgram must be called before any
// timer elapses.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[uint64]*teaTimer)}
}

// SetProgram sets where elapsed timers are delivered
func (s *Scheduler) SetProgram(p *tea.Program) {
	s.SetSend(p.Send)
}

// SetSend sets the delivery function directly
func (s *Scheduler) SetSend(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

// AfterFunc implements interaction.Scheduler
func (s *Scheduler) AfterFunc(d time.Duration, f func()) interaction.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	tt := &teaTimer{sched: s, id: s.nextID, fn: f}
	s.timers[tt.id] = tt
	id := tt.id
	tt.t = time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send == nil {
			log.Printf("Scheduler: dropping timer %d, no program", id)
			return
		}
		send(timerFiredMsg{id: id})
	})
	return tt
}

// Fire runs the callback for id unless it was stopped. It reports whether
// a callback ran.
func (s *Scheduler) Fire(id uint64) bool {
	s.mu.Lock()
	tt, ok := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	tt.fn()
	return true
}

// Pending returns the number of timers that have not fired or been stopped
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop implements interaction.Timer
func (t *teaTimer) Stop() bool {
	t.t.Stop()
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if _, ok := t.sched.timers[t.id]; !ok {
		return false
	}
	delete(t.sched.timers, t.id)
	return true
}
