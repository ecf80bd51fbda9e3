package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"emojied/internal/domain"
)

// AboutText is shown in the About popup
const AboutText = "This is an ad-free emoji search tool. Copy emojis or download as PNG — you can do both, no hassle."

// ReadyMarker is printed once the first frame is ready when running under
// the end-to-end harness
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Input        string // rendered query field
	Query        string
	Mode         domain.Mode
	Results      []domain.Glyph
	Total        int
	Selected     int
	Highlight    []int // byte offsets into the selected glyph's name
	Notification string
	ShowAbout    bool
	HelpModel    help.Model
	Keys         help.KeyMap
	Ready        bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	grid        *GridRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		grid:        NewGridRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowAbout {
		return r.popupRender.RenderPopupOverlay(r.renderAbout(), state.Height, state.Width)
	}

	content := &strings.Builder{}

	// Title with the mode switch on the right
	logo := r.styles.Title.Render("emojied")
	mode := r.styles.ModeStyle(state.Mode == domain.ModeExport).Render("[" + state.Mode.String() + "]")
	gap := state.Width - 4 - lipgloss.Width(logo) - lipgloss.Width(mode)
	if gap < 1 {
		gap = 1
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", gap), mode))
	content.WriteString("\n")

	content.WriteString(r.styles.Input.Render(state.Input))
	content.WriteString("\n\n")

	cols := Columns(state.Width)
	switch {
	case len(state.Results) > 0:
		content.WriteString(r.grid.Render(state.Results, state.Selected, cols, r.gridRows(state.Height)))
		content.WriteString("\n\n")
		content.WriteString(r.renderSelected(state))
	case strings.TrimSpace(state.Query) != "":
		content.WriteString(r.styles.Empty.Render("No emojis found"))
	default:
		content.WriteString(r.styles.Dim.Render("Type a word or a mood to find emojis"))
	}
	content.WriteString("\n\n")

	if state.Notification != "" {
		content.WriteString(r.styles.Toast.Render(state.Notification))
	}
	content.WriteString("\n")

	if state.Keys != nil {
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}
	if state.Ready {
		content.WriteString("\n" + ReadyMarker)
	}

	return r.styles.Main.Render(content.String())
}

// gridRows leaves room for the header, selection line, toast and help
func (r *Renderer) gridRows(height int) int {
	rows := height - 14
	if rows < 1 {
		return 1
	}
	return rows
}

// renderSelected shows the selected glyph with the matched characters of
// its name picked out
func (r *Renderer) renderSelected(state ViewState) string {
	if state.Selected < 0 || state.Selected >= len(state.Results) {
		return ""
	}
	g := state.Results[state.Selected]

	marks := make(map[int]bool, len(state.Highlight))
	for _, i := range state.Highlight {
		marks[i] = true
	}
	var name strings.Builder
	for i, ch := range g.Name {
		if marks[i] {
			name.WriteString(r.styles.Match.Render(string(ch)))
		} else {
			name.WriteString(r.styles.Name.Render(string(ch)))
		}
	}

	count := fmt.Sprintf("%d/%d", state.Selected+1, len(state.Results))
	if state.Total > len(state.Results) {
		count = fmt.Sprintf("%s of %d", count, state.Total)
	}
	return fmt.Sprintf("%s  %s  %s", g.Char, name.String(), r.styles.Dim.Render("U+"+strings.ReplaceAll(g.Codes, " ", " U+")+"  "+count))
}

func (r *Renderer) renderAbout() string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("About emojied"))
	b.WriteString("\n")
	b.WriteString(AboutText)
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("F2 or Esc to close"))
	return b.String()
}
