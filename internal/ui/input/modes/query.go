package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"emojied/internal/ui/input/types"
)

// Bindings is the subset of the key map a mode needs
type Bindings struct {
	Up, Down, Left, Right, Home, End key.Binding
	Activate, ToggleMode, Clear      key.Binding
	Help, About, Quit                key.Binding
}

// QueryMode is the default mode: the search field always has focus and
// only non-printable keys drive the grid
type QueryMode struct {
	keys Bindings
}

func NewQueryMode(keys Bindings) *QueryMode {
	return &QueryMode{keys: keys}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		if ctx.Query() == "" {
			return nil, true
		}
		return []types.Action{types.ClearQueryAction{}}, true
	case key.Matches(msg, m.keys.Activate):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true
	case key.Matches(msg, m.keys.ToggleMode):
		return []types.Action{types.ToggleModeAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, m.keys.About):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAbout}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, m.keys.Left):
		// Left and right belong to the text cursor until there is a grid
		if ctx.ResultCount() == 0 {
			return nil, false
		}
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, m.keys.Right):
		if ctx.ResultCount() == 0 {
			return nil, false
		}
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	}

	// Everything else edits the query
	return nil, false
}
