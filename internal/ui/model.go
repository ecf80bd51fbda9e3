package ui

import (
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emojied/internal/config"
	"emojied/internal/domain"
	"emojied/internal/eventbus"
	"emojied/internal/interaction"
	"emojied/internal/matcher"
	"emojied/internal/search"
	"emojied/internal/ui/input"
	inputtypes "emojied/internal/ui/input/types"
	"emojied/internal/ui/logic"
	"emojied/internal/ui/views"
)

// Deps are the collaborators the model is built from
type Deps struct {
	Config    *config.Config
	Matcher   *matcher.Matcher
	Clipboard interaction.Clipboard
	Raster    interaction.Rasterizer
	Bus       eventbus.EventBus
}

// Model is the Bubble Tea model for the emoji picker
type Model struct {
	cfg         *config.Config
	bus         eventbus.EventBus
	matcher     *matcher.Matcher
	search      *search.Service
	interaction *interaction.Service
	sched       *Scheduler

	inputHandler *input.Handler
	renderer     *views.Renderer
	help         help.Model
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	program      *tea.Program

	nav         *logic.Navigator
	width       int
	height      int
	showAbout   bool
	inPagerMode bool
	e2e         bool
}

// NewModel wires the search pipeline and the interaction state machine
func NewModel(deps Deps) *Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bus := deps.Bus
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	sched := NewScheduler()
	startMode, ok := domain.ParseMode(cfg.UI.StartMode)
	if !ok {
		log.Printf("Unknown start mode %q, using copy", cfg.UI.StartMode)
	}

	m := &Model{
		cfg:          cfg,
		bus:          bus,
		matcher:      deps.Matcher,
		search:       search.NewService(deps.Matcher, bus, cfg.Search.ResultCap),
		sched:        sched,
		inputHandler: input.New(input.DefaultKeyMap()),
		renderer:     views.NewRenderer(),
		help:         help.New(),
		helpRenderer: NewHelpRenderer(),
		nav:          logic.NewNavigator(),
		e2e:          os.Getenv("EMOJIED_E2E_TEST") == "1",
	}
	m.interaction = interaction.NewService(deps.Clipboard, deps.Raster, bus,
		interaction.WithScheduler(sched),
		interaction.WithTTL(time.Duration(cfg.UI.NotificationMS)*time.Millisecond),
		interaction.WithMode(startMode),
	)

	if cfg.UI.ShowAbout {
		m.inputHandler.ChangeMode(inputtypes.ModeAbout)
		m.showAbout = true
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.sched.SetProgram(p)
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncNavigator()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case timerFiredMsg:
		m.sched.Fire(msg.id)
		return m, nil

	case datasetReloadedMsg:
		m.reloadDataset(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	visible := m.search.Visible()
	state := views.ViewState{
		Width:     m.width,
		Height:    m.height,
		Input:     m.inputHandler.TextInput().View(),
		Query:     m.search.Query(),
		Mode:      m.interaction.Mode(),
		Results:   visible,
		Total:     m.search.Total(),
		Selected:  m.nav.Cursor(),
		ShowAbout: m.showAbout,
		HelpModel: m.help,
		Keys:      m.inputHandler.Keys(),
		Ready:     m.e2e,
	}
	if c := m.nav.Cursor(); c < len(visible) {
		state.Highlight = m.matcher.Highlight(m.search.Query(), visible[c].Name)
	}
	if n, ok := m.interaction.Notification(); ok {
		state.Notification = n.Message
	}
	return m.renderer.Render(state)
}

// Close stops any pending notification timer
func (m *Model) Close() {
	m.interaction.Close()
}

func (m *Model) context() input.ModelContext {
	return input.ModelContext{
		Index:   m.nav.Cursor(),
		Count:   len(m.search.Visible()),
		Cols:    views.Columns(m.width),
		QueryOf: m.search.Query(),
	}
}

// processAction executes a single action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateQueryAction:
		m.setQuery(a.Text)

	case inputtypes.ClearQueryAction:
		m.setQuery("")

	case inputtypes.NavigateAction:
		m.nav.Move(a.Direction)

	case inputtypes.ActivateAction:
		visible := m.search.Visible()
		if c := m.nav.Cursor(); c < len(visible) {
			m.interaction.Activate(visible[c])
		}

	case inputtypes.ToggleModeAction:
		m.interaction.ToggleMode()

	case inputtypes.ToggleAboutAction:
		m.showAbout = m.inputHandler.CurrentMode() == inputtypes.ModeAbout

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// setQuery recomputes results and keeps the cursor on the same glyph when
// it is still visible
func (m *Model) setQuery(q string) {
	prev := m.selectedCodes()
	m.search.SetQuery(q)
	m.retainCursor(prev)
}

func (m *Model) selectedCodes() string {
	visible := m.search.Visible()
	if c := m.nav.Cursor(); c < len(visible) {
		return visible[c].Codes
	}
	return ""
}

func (m *Model) retainCursor(codes string) {
	m.syncNavigator()
	if codes != "" {
		if idx := m.search.IndexOf(codes); idx >= 0 {
			m.nav.SetCursor(idx)
			return
		}
	}
	m.nav.SetCursor(0)
}

func (m *Model) syncNavigator() {
	m.nav.Resize(len(m.search.Visible()), views.Columns(m.width))
}

func (m *Model) reloadDataset(msg datasetReloadedMsg) {
	if msg.err != nil {
		log.Printf("Dataset reload from %s failed: %v", msg.path, msg.err)
		m.bus.Publish(eventbus.DatasetReloadFailedEvent{Source: msg.path, Err: msg.err})
		return
	}
	prev := m.selectedCodes()
	m.matcher.Rebuild(msg.ds)
	m.search.SetMatcher(m.matcher)
	m.retainCursor(prev)
	m.bus.Publish(eventbus.DatasetLoadedEvent{Source: msg.ds.Source(), Count: msg.ds.Len()})
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		log.Printf("Help pager unavailable: program not set")
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}
