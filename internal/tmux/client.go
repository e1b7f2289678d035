package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/tmux-ui/internal/logging/events"
)

// Client issues tmux commands as subprocesses and parses their delimited
// text output.
type Client struct {
	socketPath    string
	countFallback int
}

// Option customises a Client.
type Option func(*Client)

// WithCountFallback sets the value substituted for unparseable window and
// pane counts.
func WithCountFallback(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.countFallback = n
		}
	}
}

// NewClient returns a client bound to socketPath. An empty path targets the
// default tmux server.
func NewClient(socketPath string, opts ...Option) *Client {
	c := &Client{
		socketPath:    strings.TrimSpace(socketPath),
		countFallback: DefaultCountFallback,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsInsideTmux reports whether the current process runs inside a tmux client.
func (c *Client) IsInsideTmux() bool {
	_, ok := lookupEnv(envInsideTmux)
	return ok
}

func (c *Client) args(extra ...string) []string {
	args := make([]string, 0, len(extra)+2)
	if c.socketPath != "" {
		args = append(args, "-S", c.socketPath)
	}
	return append(args, extra...)
}

func (c *Client) run(extra ...string) error {
	args := c.args(extra...)
	events.Registry.Command(args)
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		err = commandError(err)
		events.Registry.Failure(args, err)
		return err
	}
	return nil
}

func (c *Client) output(extra ...string) (string, error) {
	args := c.args(extra...)
	events.Registry.Command(args)
	out, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		err = commandError(err)
		events.Registry.Failure(args, err)
		return "", err
	}
	return string(out), nil
}

// exitStatus is satisfied by *exec.ExitError: the binary ran but reported
// failure.
type exitStatus interface {
	ExitCode() int
}

func isExitStatus(err error) bool {
	var status exitStatus
	return errors.As(err, &status)
}

// commandError folds tmux's stderr into the error text.
func commandError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
	}
	return err
}
