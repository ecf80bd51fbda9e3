// Package clipboard writes text to the system clipboard, falling back to
// the OSC 52 terminal escape when no clipboard utility is available.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable means no writer could take the text
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer accepts clipboard text
type Writer interface {
	WriteText(text string) error
}

// System uses the platform clipboard (pbcopy, xclip, wl-copy, ...)
type System struct{}

// WriteText implements Writer
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard. Inside tmux or screen the
// sequence is wrapped so it reaches the outer terminal.
type OSC52 struct {
	Out io.Writer
	Env func(string) string
}

// NewOSC52 writes escape sequences to stderr, which stays attached to the
// terminal while a full screen program owns stdout
func NewOSC52() OSC52 {
	return OSC52{Out: os.Stderr, Env: os.Getenv}
}

// WriteText implements Writer
func (o OSC52) WriteText(text string) error {
	if o.Out == nil {
		return ErrUnavailable
	}
	getenv := o.Env
	if getenv == nil {
		getenv = os.Getenv
	}

	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Chain tries each writer in turn and stops at the first success
type Chain []Writer

// WriteText implements Writer
func (c Chain) WriteText(text string) error {
	var errs []error
	for _, w := range c {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}

// Default returns the system clipboard, with OSC 52 as fallback when
// fallback is set
func Default(fallback bool) Writer {
	if !fallback {
		return System{}
	}
	return Chain{System{}, NewOSC52()}
}
