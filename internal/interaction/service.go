package interaction

import (
	"errors"
	"fmt"
	"log"
	"time"

	"emojied/internal/domain"
	"emojied/internal/eventbus"
)

var (
	errNoClipboard  = errors.New("no clipboard")
	errNoRasterizer = errors.New("no rasterizer")
	errExportFailed = errors.New("export failed")
)

// Service owns the mode toggle and the transient notification. Failures
// of the clipboard or the rasterizer never escape: they are logged and
// the user simply sees no notification.
type Service struct {
	state     *State
	bus       eventbus.EventBus
	clipboard Clipboard
	raster    Rasterizer
	clock     Clock
	scheduler Scheduler
	ttl       time.Duration

	timer Timer
	seq   uint64
}

// Option configures a Service
type Option func(*Service)

// WithClock injects the time source
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithScheduler injects the expiry scheduler
func WithScheduler(sch Scheduler) Option {
	return func(s *Service) { s.scheduler = sch }
}

// WithTTL overrides the notification lifetime
func WithTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithMode sets the starting mode
func WithMode(m domain.Mode) Option {
	return func(s *Service) { s.state.Mode = m }
}

// NewService creates the interaction state machine in Copy mode with no
// notification
func NewService(clip Clipboard, raster Rasterizer, bus eventbus.EventBus, opts ...Option) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	s := &Service{
		state:     &State{Mode: domain.ModeCopy},
		bus:       bus,
		clipboard: clip,
		raster:    raster,
		clock:     SystemClock{},
		scheduler: SystemScheduler{},
		ttl:       DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current mode
func (s *Service) Mode() domain.Mode {
	return s.state.Mode
}

// Notification returns the live notification, if any
func (s *Service) Notification() (domain.Notification, bool) {
	if s.state.Notification == nil {
		return domain.Notification{}, false
	}
	return *s.state.Notification, true
}

// ToggleMode flips between Copy and Export. The notification is left alone.
func (s *Service) ToggleMode() domain.Mode {
	s.state.Mode = s.state.Mode.Toggle()
	s.bus.Publish(eventbus.ModeToggledEvent{Mode: s.state.Mode})
	return s.state.Mode
}

// Activate performs the current mode's action on g and reports whether it
// succeeded
func (s *Service) Activate(g domain.Glyph) bool {
	switch s.state.Mode {
	case domain.ModeExport:
		return s.export(g)
	default:
		return s.copy(g)
	}
}

func (s *Service) copy(g domain.Glyph) bool {
	if s.clipboard == nil {
		s.fail(g, errNoClipboard)
		return false
	}
	if err := s.clipboard.WriteText(g.Char); err != nil {
		s.fail(g, err)
		return false
	}
	s.notify(fmt.Sprintf("Copied %s to clipboard!", g.Char))
	return true
}

func (s *Service) export(g domain.Glyph) bool {
	if s.raster == nil {
		s.fail(g, errNoRasterizer)
		return false
	}
	msg, ok := s.raster.Render(g.Char)
	if !ok {
		s.fail(g, errExportFailed)
		return false
	}
	s.notify(msg)
	return true
}

func (s *Service) fail(g domain.Glyph, err error) {
	log.Printf("Activation of %s (%s) in %s mode failed: %v", g.Codes, g.Name, s.state.Mode, err)
	s.bus.Publish(eventbus.ActivationFailedEvent{Glyph: g, Mode: s.state.Mode, Err: err})
}

// notify replaces any live notification and restarts the expiry timer
func (s *Service) notify(message string) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.seq++
	seq := s.seq
	n := &domain.Notification{
		Message:   message,
		ExpiresAt: s.clock.Now().Add(s.ttl),
		Seq:       seq,
	}
	s.state.Notification = n
	s.timer = s.scheduler.AfterFunc(s.ttl, func() { s.expire(seq) })

	s.bus.Publish(eventbus.NotificationShownEvent{Notification: *n})
}

// expire clears the notification if it is still the one the timer was
// armed for
func (s *Service) expire(seq uint64) {
	if s.state.Notification == nil || s.state.Notification.Seq != seq {
		return
	}
	s.state.Notification = nil
	s.timer = nil
	s.bus.Publish(eventbus.NotificationExpiredEvent{Seq: seq})
}

// Close stops a pending expiry
func (s *Service) Close() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
