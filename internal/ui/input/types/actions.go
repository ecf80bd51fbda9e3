package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Glyph actions
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

type ToggleModeAction struct{}

func (a ToggleModeAction) Type() string { return "toggle_mode" }

// UI actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ToggleAboutAction struct{}

func (a ToggleAboutAction) Type() string { return "toggle_about" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
