package interaction

import (
	"time"

	"emojied/internal/domain"
)

// DefaultTTL is how long a notification stays visible
const DefaultTTL = 1500 * time.Millisecond

// State is the mode plus at most one live notification
type State struct {
	Mode         domain.Mode
	Notification *domain.Notification
}

// Clipboard receives copied glyphs
type Clipboard interface {
	WriteText(text string) error
}

// Rasterizer exports a glyph and describes what it did. ok is false when
// the export failed.
type Rasterizer interface {
	Render(glyph string) (message string, ok bool)
}

// Clock tells the time
type Clock interface {
	Now() time.Time
}

// Timer is a pending callback
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// SystemScheduler runs callbacks on their own goroutine via time.AfterFunc.
// Callers that need callbacks on a specific goroutine supply their own.
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
