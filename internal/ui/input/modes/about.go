package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"emojied/internal/ui/input/types"
)

// AboutMode shows the About popup; any dismiss key returns to the query
type AboutMode struct {
	keys Bindings
}

func NewAboutMode(keys Bindings) *AboutMode {
	return &AboutMode{keys: keys}
}

func (m *AboutMode) Name() string {
	return "about"
}

func (m *AboutMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleAboutAction{}}
}

func (m *AboutMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleAboutAction{}}
}

func (m *AboutMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.About, m.keys.Clear, m.keys.Activate):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	}
	// Swallow everything else while the popup is up
	return nil, true
}
