package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding. It doubles as the help.KeyMap for the footer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
	Activate   key.Binding
	ToggleMode key.Binding
	Clear      key.Binding
	Help       key.Binding
	About      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the stock bindings. Printable keys always go to
// the query, so nothing here is a bare letter.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy/save")),
		ToggleMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "copy ⇄ png")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		About:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "about")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.ToggleMode, k.Clear, k.Help, k.About, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Activate, k.ToggleMode, k.Clear},
		{k.Help, k.About, k.Quit},
	}
}
