package tmux

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-ui/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExit struct {
	msg string
}

func (e fakeExit) Error() string { return e.msg }
func (e fakeExit) ExitCode() int { return 1 }

type fakeCommander struct {
	out []byte
	err error
}

func (f fakeCommander) Run() error              { return f.err }
func (f fakeCommander) Output() ([]byte, error) { return f.out, f.err }

type execRecorder struct {
	calls   [][]string
	respond func(args []string) fakeCommander
}

func withStubExec(t *testing.T, respond func(args []string) fakeCommander) *execRecorder {
	t.Helper()
	rec := &execRecorder{respond: respond}
	prev := runExecCommand
	runExecCommand = func(name string, args ...string) commander {
		if name != "tmux" {
			t.Fatalf("unexpected binary %q", name)
		}
		rec.calls = append(rec.calls, append([]string(nil), args...))
		if rec.respond == nil {
			return fakeCommander{}
		}
		return rec.respond(args)
	}
	t.Cleanup(func() { runExecCommand = prev })
	return rec
}

func (r *execRecorder) last() []string {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func TestListSessionsParsesRecords(t *testing.T) {
	out := "alpha|2|0|1700000000\nbeta|1|1|1700000100\n"
	rec := withStubExec(t, func([]string) fakeCommander { return fakeCommander{out: []byte(out)} })

	sessions, err := NewClient("").ListSessions()
	require.NoError(t, err)
	assert.Equal(t, []Session{
		{Name: "alpha", Windows: 2, Attached: false, Created: "1700000000"},
		{Name: "beta", Windows: 1, Attached: true, Created: "1700000100"},
	}, sessions)
	assert.Equal(t, []string{"list-sessions", "-F", sessionFormat}, rec.last())
}

func TestListSessionsNoServerIsEmpty(t *testing.T) {
	withStubExec(t, func([]string) fakeCommander {
		return fakeCommander{err: fakeExit{msg: "no server running on /tmp/tmux-1000/default"}}
	})
	sessions, err := NewClient("").ListSessions()
	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestListSessionsSpawnFailureIsError(t *testing.T) {
	withStubExec(t, func([]string) fakeCommander {
		return fakeCommander{err: errors.New(`exec: "tmux": executable file not found in $PATH`)}
	})
	_, err := NewClient("").ListSessions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list-sessions")
}

func TestListSessionsToleratesMalformedCounts(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(nil) })

	out := "alpha|many|0|1\nshort|1\nbeta|3|2|2\n"
	withStubExec(t, func([]string) fakeCommander { return fakeCommander{out: []byte(out)} })

	sessions, err := NewClient("").ListSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, DefaultCountFallback, sessions[0].Windows)
	assert.True(t, sessions[1].Attached)
	assert.Contains(t, buf.String(), "failed to parse window count")

	sessions, err = NewClient("", WithCountFallback(0)).ListSessions()
	require.NoError(t, err)
	assert.Equal(t, 0, sessions[0].Windows)
}

func TestSocketPathPrefixesArgs(t *testing.T) {
	rec := withStubExec(t, nil)
	require.NoError(t, NewClient("/tmp/sock").KillSession("alpha"))
	assert.Equal(t, []string{"-S", "/tmp/sock", "kill-session", "-t", "alpha"}, rec.last())
}

func TestMutationsIssueExpectedCommands(t *testing.T) {
	rec := withStubExec(t, nil)
	c := NewClient("")

	require.NoError(t, c.CreateSession("gamma"))
	assert.Equal(t, []string{"new-session", "-d", "-s", "gamma"}, rec.last())

	require.NoError(t, c.RenameSession("gamma", "delta"))
	assert.Equal(t, []string{"rename-session", "-t", "gamma", "delta"}, rec.last())

	require.NoError(t, c.SwitchClient("delta"))
	assert.Equal(t, []string{"switch-client", "-t", "delta"}, rec.last())

	require.NoError(t, c.CreateWindow("delta", ""))
	assert.Equal(t, []string{"new-window", "-t", "delta"}, rec.last())

	require.NoError(t, c.CreateWindow("delta", "logs"))
	assert.Equal(t, []string{"new-window", "-t", "delta", "-n", "logs"}, rec.last())

	require.NoError(t, c.KillWindow("delta:1"))
	assert.Equal(t, []string{"kill-window", "-t", "delta:1"}, rec.last())
}

func TestMutationErrorsCarryContext(t *testing.T) {
	withStubExec(t, func([]string) fakeCommander {
		return fakeCommander{err: fakeExit{msg: "exit status 1"}}
	})
	err := NewClient("").CreateSession("dup")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to create session dup"))

	err = NewClient("").RenameSession("a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from a to b")
}

func TestDetachSessionSwallowsFailure(t *testing.T) {
	rec := withStubExec(t, func([]string) fakeCommander {
		return fakeCommander{err: fakeExit{msg: "no current client"}}
	})
	NewClient("").DetachSession("alpha")
	assert.Equal(t, []string{"detach-client", "-s", "alpha"}, rec.last())
}

func TestAttachSessionRunsInteractive(t *testing.T) {
	var got []string
	prev := runInteractive
	runInteractive = func(name string, args ...string) error {
		got = append([]string{name}, args...)
		return nil
	}
	t.Cleanup(func() { runInteractive = prev })

	require.NoError(t, NewClient("/tmp/sock").AttachSession("alpha"))
	assert.Equal(t, []string{"tmux", "-S", "/tmp/sock", "attach-session", "-t", "alpha"}, got)

	runInteractive = func(string, ...string) error { return errors.New("lost terminal") }
	err := NewClient("").AttachSession("alpha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lost terminal")
}

func TestIsInsideTmux(t *testing.T) {
	prev := lookupEnv
	t.Cleanup(func() { lookupEnv = prev })

	lookupEnv = func(key string) (string, bool) {
		assert.Equal(t, "TMUX", key)
		return "/tmp/tmux-1000/default,123,0", true
	}
	assert.True(t, NewClient("").IsInsideTmux())

	lookupEnv = func(string) (string, bool) { return "", false }
	assert.False(t, NewClient("").IsInsideTmux())
}

func TestListWindowsParsesRecords(t *testing.T) {
	out := "@1|editor|2|1\n@2|logs|?|0\n"
	rec := withStubExec(t, func([]string) fakeCommander { return fakeCommander{out: []byte(out)} })

	windows, err := NewClient("").ListWindows("alpha")
	require.NoError(t, err)
	assert.Equal(t, []Window{
		{ID: "@1", Name: "editor", Panes: 2, Active: true},
		{ID: "@2", Name: "logs", Panes: DefaultCountFallback, Active: false},
	}, windows)
	assert.Equal(t, []string{"list-windows", "-t", "alpha", "-F", windowFormat}, rec.last())
}

func TestSessionNames(t *testing.T) {
	names := SessionNames([]Session{{Name: "a"}, {Name: "b"}})
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestListWindowsUnknownSessionIsError(t *testing.T) {
	withStubExec(t, func([]string) fakeCommander {
		return fakeCommander{err: fakeExit{msg: "can't find session: nope"}}
	})
	_, err := NewClient("").ListWindows("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
