package tmux

import (
	"os"
	"os/exec"
)

// Session is a read-only snapshot of one tmux session.
type Session struct {
	Name     string
	Windows  int
	Attached bool
	Created  string
}

// Window is a read-only snapshot of one window inside a session.
type Window struct {
	ID     string
	Name   string
	Panes  int
	Active bool
}

// DefaultCountFallback replaces window/pane counts tmux reports in a form
// that cannot be parsed.
const DefaultCountFallback = 1

const (
	sessionFormat = "#{session_name}|#{session_windows}|#{session_attached}|#{session_created}"
	windowFormat  = "#{window_id}|#{window_name}|#{window_panes}|#{window_active}"
	fieldSep      = "|"
	envInsideTmux = "TMUX"
)

var (
	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}

	runInteractive = func(name string, args ...string) error {
		cmd := exec.Command(name, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	lookupEnv = os.LookupEnv
)

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

// Run discards stdout but keeps stderr available on *exec.ExitError so
// failures can be reported with tmux's own message.
func (r realCommander) Run() error {
	_, err := r.cmd.Output()
	return err
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}
