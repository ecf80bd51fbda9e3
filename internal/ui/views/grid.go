package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"emojied/internal/domain"
)

// CellWidth is the number of terminal columns given to each glyph,
// padding included. Emoji are two columns wide in most terminals.
const CellWidth = 4

// Columns returns how many cells fit in a line of the given width
func Columns(width int) int {
	// Main style pads two columns on each side
	usable := width - 4
	if usable < CellWidth {
		return 1
	}
	return usable / CellWidth
}

// GridRenderer lays glyphs out in rows
type GridRenderer struct {
	styles *Styles
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// Render draws glyphs in rows of cols cells, showing at most maxRows rows
// around the selected glyph
func (g *GridRenderer) Render(glyphs []domain.Glyph, selected, cols, maxRows int) string {
	if len(glyphs) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}

	rows := (len(glyphs) + cols - 1) / cols
	first, last := 0, rows
	if maxRows > 0 && rows > maxRows {
		selRow := 0
		if selected >= 0 {
			selRow = selected / cols
		}
		first = selRow - maxRows + 1
		if first < 0 {
			first = 0
		}
		last = first + maxRows
	}

	var b strings.Builder
	if first > 0 {
		b.WriteString(g.styles.Scroll.Render("↑ more"))
		b.WriteString("\n")
	}
	for row := first; row < last; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(glyphs) {
				break
			}
			cell := padCell(glyphs[i].Char)
			if i == selected {
				b.WriteString(g.styles.SelectedCell.Render(cell))
			} else {
				b.WriteString(g.styles.Cell.Render(cell))
			}
		}
		if row < last-1 {
			b.WriteString("\n")
		}
	}
	if last < rows {
		b.WriteString("\n")
		b.WriteString(g.styles.Scroll.Render("↓ more"))
	}
	return b.String()
}

// padCell centres a glyph in CellWidth columns
func padCell(char string) string {
	w := runewidth.StringWidth(char)
	if w > CellWidth-1 {
		return runewidth.Truncate(char, CellWidth, "")
	}
	left := (CellWidth - w) / 2
	return strings.Repeat(" ", left) + runewidth.FillRight(char, CellWidth-left)
}
