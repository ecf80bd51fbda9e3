package raster

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"
)

// DefaultSize is the edge length of exported images
const DefaultSize = 128

var (
	// ErrCanvasUnavailable means no drawing surface or font could be set up
	ErrCanvasUnavailable = errors.New("canvas unavailable")
	// ErrEncoding means the drawn image could not be encoded as PNG
	ErrEncoding = errors.New("png encoding failed")
)

// Canvas draws a glyph centered on a transparent square and returns it
// PNG encoded
type Canvas interface {
	Render(glyph string, size int) ([]byte, error)
}

// Saver hands finished files to the user
type Saver interface {
	Save(name string, data []byte) error
}

// Rasterizer turns glyphs into PNG files
type Rasterizer struct {
	canvas Canvas
	saver  Saver
	size   int
}

// New creates a rasterizer. A size below 1 selects DefaultSize.
func New(canvas Canvas, saver Saver, size int) *Rasterizer {
	if size < 1 {
		size = DefaultSize
	}
	return &Rasterizer{canvas: canvas, saver: saver, size: size}
}

// Filename names the export of glyph after its first code point,
// e.g. "emoji-1f40d.png"
func Filename(glyph string) string {
	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		return "emoji.png"
	}
	return fmt.Sprintf("emoji-%x.png", r)
}

// Encode draws glyph and returns the file name and PNG bytes without
// saving anything
func (r *Rasterizer) Encode(glyph string) (string, []byte, error) {
	if glyph == "" {
		return "", nil, fmt.Errorf("%w: empty glyph", ErrCanvasUnavailable)
	}
	if r.canvas == nil {
		return "", nil, ErrCanvasUnavailable
	}

	data, err := r.canvas.Render(glyph, r.size)
	if err != nil {
		return "", nil, err
	}
	return Filename(glyph), data, nil
}

// Render exports glyph and returns the message to show. Failures are
// logged; ok is false and nothing is saved.
func (r *Rasterizer) Render(glyph string) (message string, ok bool) {
	name, data, err := r.Encode(glyph)
	if err != nil {
		log.Printf("Rasterizing %q failed: %v", glyph, err)
		return "", false
	}

	if r.saver == nil {
		log.Printf("No saver configured, dropping %s", name)
		return "", false
	}
	if err := r.saver.Save(name, data); err != nil {
		log.Printf("Saving %s failed: %v", name, err)
		return "", false
	}

	return fmt.Sprintf("Saved %s as PNG", glyph), true
}
