package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// glyphScale is the font size relative to the canvas edge
const glyphScale = 0.8

// GGCanvas renders glyphs with gogpu/gg. Color fonts keep their own
// colors; outline fonts are filled with the configured color.
type GGCanvas struct {
	source *text.FontSource
	fill   color.Color
}

// NewGGCanvas creates a canvas drawing with source. hex is the fill for
// outline fonts, "#000000" when empty.
func NewGGCanvas(source *text.FontSource, hex string) *GGCanvas {
	if hex == "" {
		hex = "#000000"
	}
	return &GGCanvas{source: source, fill: gg.Hex(hex).Color()}
}

// Render draws glyph centered on a transparent size x size square
func (c *GGCanvas) Render(glyph string, size int) ([]byte, error) {
	if c == nil || c.source == nil {
		return nil, ErrCanvasUnavailable
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrCanvasUnavailable, size)
	}

	face := c.source.Face(glyphScale * float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Center the advance box horizontally and the ascent/descent box vertically
	w, _ := text.Measure(glyph, face)
	m := face.Metrics()
	x := (float64(size) - w) / 2
	y := (float64(size) + m.Ascent - m.Descent) / 2
	text.DrawWithEmoji(img, glyph, face, x, y, c.fill)

	dc := gg.NewContextForImage(img)
	defer dc.Close()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}
