package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tmux-ui/internal/logging/events"
	"github.com/atomicstack/tmux-ui/internal/state"
	"github.com/atomicstack/tmux-ui/internal/theme"
	"github.com/atomicstack/tmux-ui/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode selects how key presses are interpreted.
type InputMode int

const (
	ModeViewing InputMode = iota
	ModeCreatingSession
	ModeRenamingSession
)

func (m InputMode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeCreatingSession:
		return "creating"
	case ModeRenamingSession:
		return "renaming"
	default:
		return "unknown"
	}
}

const (
	defaultWidth  = 80
	defaultHeight = 24

	// pollInterval bounds how long the loop idles between renders.
	pollInterval = 100 * time.Millisecond

	welcomeStatus = "Welcome to tmux-ui! Press 'h' for help."
)

var styles = theme.Default()

// Registry is the subset of the tmux client the controller drives.
type Registry interface {
	ListSessions() ([]tmux.Session, error)
	CreateSession(name string) error
	KillSession(name string) error
	RenameSession(oldName, newName string) error
	SwitchClient(name string) error
	DetachSession(name string)
	CreateWindow(session, name string) error
	IsInsideTmux() bool
}

// Options tunes a Model. Zero values select the defaults.
type Options struct {
	Keys        *KeyMap
	AutoRefresh time.Duration
	Width       int
	Height      int
}

type msgHandler func(tea.Msg) tea.Cmd

type pollMsg time.Time

// Model implements the Bubble Tea model for the session manager.
type Model struct {
	registry Registry
	keys     KeyMap
	sessions *state.Sessions

	mode         InputMode
	input        string
	status       string
	statusErr    bool
	attachTarget string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	offset      int

	autoRefresh time.Duration
	lastRefresh time.Time
	now         func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a controller in Viewing mode with an empty listing. The
// first refresh happens in Init.
func NewModel(registry Registry, opts Options) *Model {
	m := &Model{
		registry:    registry,
		keys:        DefaultKeyMap(),
		sessions:    state.NewSessions(),
		mode:        ModeViewing,
		status:      welcomeStatus,
		width:       defaultWidth,
		height:      defaultHeight,
		autoRefresh: opts.AutoRefresh,
		now:         time.Now,
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init loads the initial listing and starts the poll tick.
func (m *Model) Init() tea.Cmd {
	if err := m.refresh(); err != nil {
		m.fail("Error refreshing sessions", err)
	}
	return pollCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(pollMsg{}):           m.handlePollMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handlePollMsg(msg tea.Msg) tea.Cmd {
	now := time.Time(msg.(pollMsg))
	if m.autoRefresh > 0 && m.mode == ModeViewing && now.Sub(m.lastRefresh) >= m.autoRefresh {
		if err := m.refresh(); err != nil {
			m.fail("Error refreshing sessions", err)
		}
	}
	return pollCmd()
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m *Model) setMode(mode InputMode) {
	if m.mode != mode {
		events.UI.Mode(m.mode.String(), mode.String())
	}
	m.mode = mode
	m.input = ""
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
	events.Action.Success(msg)
}

func (m *Model) fail(prefix string, err error) {
	m.status = prefix + ": " + err.Error()
	m.statusErr = true
	events.Action.Error(err)
}

// Mode reports the current input mode.
func (m *Model) Mode() InputMode { return m.mode }

// Input returns the text typed into the active prompt.
func (m *Model) Input() string { return m.input }

// Status returns the status line shown while viewing.
func (m *Model) Status() string { return m.status }

// Sessions returns the last listing.
func (m *Model) Sessions() []tmux.Session { return m.sessions.Entries() }

// Selected reports the selected row, if any.
func (m *Model) Selected() (int, bool) { return m.sessions.Selected() }

// AttachTarget names the session to attach once the program has exited.
func (m *Model) AttachTarget() string { return m.attachTarget }
