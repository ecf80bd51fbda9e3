package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emojied/internal/ui/input/modes"
	"emojied/internal/ui/input/types"
)

// Handler routes keys to the active mode. The query field is shared by
// all modes and keeps focus while the query mode is active.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        KeyMap
}

func New(keys KeyMap) *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search emojis..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Focus()

	bindings := modes.Bindings{
		Up: keys.Up, Down: keys.Down, Left: keys.Left, Right: keys.Right,
		Home: keys.Home, End: keys.End,
		Activate: keys.Activate, ToggleMode: keys.ToggleMode, Clear: keys.Clear,
		Help: keys.Help, About: keys.About, Quit: keys.Quit,
	}

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}
	h.modes[types.ModeQuery] = modes.NewQueryMode(bindings)
	h.modes[types.ModeAbout] = modes.NewAboutMode(bindings)
	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, handler.Exit(ctx)...)
			h.currentMode = a.Mode
			if next := h.modes[h.currentMode]; next != nil {
				allActions = append(allActions, next.Enter(ctx)...)
			}
			if h.currentMode == types.ModeQuery {
				cmd = h.textInput.Focus()
			} else {
				h.textInput.Blur()
			}
		case types.ClearQueryAction:
			h.textInput.Reset()
			allActions = append(allActions, a)
		default:
			allActions = append(allActions, action)
		}
	}

	if !consumed && h.currentMode == types.ModeQuery {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateQueryAction{Text: after})
		}
	}

	return allActions, cmd
}

// Update forwards non-key messages (cursor blink) to the query field
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) Keys() KeyMap {
	return h.keys
}

// SetQuery replaces the field contents without emitting an action
func (h *Handler) SetQuery(q string) {
	h.textInput.SetValue(q)
	h.textInput.CursorEnd()
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeQuery
	h.textInput.Reset()
	h.textInput.Focus()
}

// ChangeMode switches mode directly, as on startup
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if mode == types.ModeQuery {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}
