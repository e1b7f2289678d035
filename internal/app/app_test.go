package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-ui/internal/tmux"
	"github.com/atomicstack/tmux-ui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRegistry struct {
	log       *[]string
	sessions  []tmux.Session
	inside    bool
	attachErr error
}

func (r *recordingRegistry) ListSessions() ([]tmux.Session, error) { return r.sessions, nil }
func (r *recordingRegistry) CreateSession(string) error            { return nil }
func (r *recordingRegistry) KillSession(string) error              { return nil }
func (r *recordingRegistry) RenameSession(string, string) error    { return nil }
func (r *recordingRegistry) SwitchClient(name string) error {
	*r.log = append(*r.log, "switch "+name)
	return nil
}
func (r *recordingRegistry) DetachSession(string)              {}
func (r *recordingRegistry) CreateWindow(string, string) error { return nil }
func (r *recordingRegistry) IsInsideTmux() bool                { return r.inside }
func (r *recordingRegistry) AttachSession(name string) error {
	*r.log = append(*r.log, "attach "+name)
	return r.attachErr
}

// fakeProgram stands in for the terminal: it logs acquisition and release
// around a scripted interaction with the model.
type fakeProgram struct {
	model  *ui.Model
	log    *[]string
	keys   []string
	err    error
	detach bool
}

func (p *fakeProgram) Run() (tea.Model, error) {
	*p.log = append(*p.log, "acquire")
	defer func() { *p.log = append(*p.log, "release") }()
	h := ui.NewHarness(p.model)
	h.Init()
	h.Press(p.keys...)
	if p.err != nil {
		return nil, p.err
	}
	if p.detach {
		return nil, nil
	}
	return h.Model(), nil
}

func stubProgram(t *testing.T, log *[]string, keys []string, err error) *[]tea.ProgramOption {
	t.Helper()
	var captured []tea.ProgramOption
	prev := newProgram
	newProgram = func(model tea.Model, opts ...tea.ProgramOption) program {
		captured = opts
		return &fakeProgram{model: model.(*ui.Model), log: log, keys: keys, err: err}
	}
	t.Cleanup(func() { newProgram = prev })
	return &captured
}

func twoSessions(log *[]string) *recordingRegistry {
	return &recordingRegistry{
		log: log,
		sessions: []tmux.Session{
			{Name: "alpha", Windows: 2},
			{Name: "beta", Windows: 1, Attached: true},
		},
	}
}

func TestAttachHappensAfterTerminalRelease(t *testing.T) {
	var log []string
	opts := stubProgram(t, &log, []string{"down", "enter"}, nil)

	require.NoError(t, Run(Config{}, twoSessions(&log)))
	assert.Equal(t, []string{"acquire", "release", "attach beta"}, log)
	assert.Len(t, *opts, 2)
}

func TestQuitDoesNotAttach(t *testing.T) {
	var log []string
	stubProgram(t, &log, []string{"q"}, nil)

	require.NoError(t, Run(Config{}, twoSessions(&log)))
	assert.Equal(t, []string{"acquire", "release"}, log)
}

func TestSwitchInsideTmuxStaysInLoop(t *testing.T) {
	var log []string
	stubProgram(t, &log, []string{"enter", "q"}, nil)
	reg := twoSessions(&log)
	reg.inside = true

	require.NoError(t, Run(Config{}, reg))
	assert.Equal(t, []string{"acquire", "switch alpha", "release"}, log)
}

func TestProgramErrorSkipsAttach(t *testing.T) {
	var log []string
	stubProgram(t, &log, []string{"enter"}, errors.New("tty gone"))

	err := Run(Config{}, twoSessions(&log))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.Equal(t, []string{"acquire", "release"}, log)
}

func TestKilledProgramIsNotAnError(t *testing.T) {
	var log []string
	stubProgram(t, &log, nil, tea.ErrProgramKilled)

	require.NoError(t, Run(Config{}, twoSessions(&log)))
	assert.Equal(t, []string{"acquire", "release"}, log)
}

func TestWrappedKillIsReturned(t *testing.T) {
	var log []string
	stubProgram(t, &log, []string{"enter"}, fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrProgramPanic))

	err := Run(Config{}, twoSessions(&log))
	require.Error(t, err)
	assert.ErrorIs(t, err, tea.ErrProgramPanic)
	assert.Equal(t, []string{"acquire", "release"}, log)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// terminalProgram runs a real program against the given input with its
// output discarded.
func terminalProgram(t *testing.T, input io.Reader) {
	t.Helper()
	prev := newProgram
	newProgram = func(model tea.Model, opts ...tea.ProgramOption) program {
		opts = append(opts, tea.WithInput(input), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
		return tea.NewProgram(model, opts...)
	}
	t.Cleanup(func() { newProgram = prev })
}

func TestTerminalReadFailureIsReturned(t *testing.T) {
	var log []string
	readErr := errors.New("read /dev/tty: input/output error")
	terminalProgram(t, failingReader{err: readErr})

	err := Run(Config{}, twoSessions(&log))
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Empty(t, log)
}

type panickingRegistry struct {
	*recordingRegistry
}

func (panickingRegistry) ListSessions() ([]tmux.Session, error) { panic("registry exploded") }

func TestPanicInLoopIsReturned(t *testing.T) {
	var log []string
	terminalProgram(t, strings.NewReader(""))

	err := Run(Config{}, panickingRegistry{twoSessions(&log)})
	require.Error(t, err)
	assert.ErrorIs(t, err, tea.ErrProgramPanic)
	assert.Empty(t, log)
}

func TestAttachFailureIsReturned(t *testing.T) {
	var log []string
	stubProgram(t, &log, []string{"a"}, nil)
	reg := twoSessions(&log)
	reg.attachErr = errors.New("exit status 1")

	err := Run(Config{}, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha")
}

func TestAttachTargetFallsBackToInitialModel(t *testing.T) {
	var log []string
	prev := newProgram
	newProgram = func(model tea.Model, opts ...tea.ProgramOption) program {
		return &fakeProgram{model: model.(*ui.Model), log: &log, keys: []string{"a"}, detach: true}
	}
	t.Cleanup(func() { newProgram = prev })

	require.NoError(t, Run(Config{}, twoSessions(&log)))
	assert.Equal(t, []string{"acquire", "release", "attach alpha"}, log)
}

func TestKeyMapIsPassedThrough(t *testing.T) {
	var log []string
	stubProgram(t, &log, []string{"q", "Q"}, nil)
	keys := ui.DefaultKeyMap()
	require.NoError(t, keys.Apply(map[string][]string{"quit": {"Q"}, "attach": {"q"}}))

	require.NoError(t, Run(Config{Keys: &keys}, twoSessions(&log)))
	assert.Equal(t, []string{"acquire", "release", "attach alpha"}, log)
}
