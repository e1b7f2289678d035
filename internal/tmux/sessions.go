package tmux

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-ui/internal/logging"
	"github.com/atomicstack/tmux-ui/internal/logging/events"
)

// ListSessions returns every session in tmux's own order. A tmux that runs
// but fails (typically "no server running") yields an empty list.
func (c *Client) ListSessions() ([]Session, error) {
	out, err := c.output("list-sessions", "-F", sessionFormat)
	if err != nil {
		if isExitStatus(err) {
			return []Session{}, nil
		}
		return nil, fmt.Errorf("failed to execute tmux list-sessions: %w", err)
	}
	return parseSessions(out, c.countFallback), nil
}

func (c *Client) CreateSession(name string) error {
	events.Session.Create(name)
	if err := c.run("new-session", "-d", "-s", name); err != nil {
		return fmt.Errorf("failed to create session %s: %w", name, err)
	}
	return nil
}

func (c *Client) KillSession(name string) error {
	events.Session.Kill(name)
	if err := c.run("kill-session", "-t", name); err != nil {
		return fmt.Errorf("failed to kill session %s: %w", name, err)
	}
	return nil
}

func (c *Client) RenameSession(oldName, newName string) error {
	events.Session.Rename(oldName, newName)
	if err := c.run("rename-session", "-t", oldName, newName); err != nil {
		return fmt.Errorf("failed to rename session from %s to %s: %w", oldName, newName, err)
	}
	return nil
}

// SwitchClient moves the current tmux client to name. Only meaningful when
// IsInsideTmux reports true.
func (c *Client) SwitchClient(name string) error {
	events.Session.Switch(name)
	if err := c.run("switch-client", "-t", name); err != nil {
		return fmt.Errorf("failed to switch to session %s: %w", name, err)
	}
	return nil
}

// AttachSession hands the process terminal to tmux and blocks until the
// client detaches. The caller must not hold the terminal in raw mode or on
// the alternate screen.
func (c *Client) AttachSession(name string) error {
	events.Session.Attach(name)
	args := c.args("attach-session", "-t", name)
	events.Registry.Command(args)
	if err := runInteractive("tmux", args...); err != nil {
		events.Registry.Failure(args, err)
		return fmt.Errorf("failed to attach to session %s: %w", name, err)
	}
	return nil
}

// DetachSession detaches all clients from name. It is best-effort: a session
// without clients makes tmux fail, which is not an error here.
func (c *Client) DetachSession(name string) {
	events.Session.Detach(name)
	_ = c.run("detach-client", "-s", name)
}

func parseSessions(out string, fallback int) []Session {
	sessions := []Session{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, fieldSep)
		if len(parts) < 4 {
			continue
		}
		sessions = append(sessions, Session{
			Name:     parts[0],
			Windows:  parseCount(parts[1], fallback, "window"),
			Attached: strings.TrimSpace(parts[2]) != "0",
			Created:  strings.TrimSpace(parts[3]),
		})
	}
	return sessions
}

func parseCount(raw string, fallback int, kind string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		fields := map[string]interface{}{"value": raw, "fallback": fallback}
		if err != nil {
			fields["error"] = err.Error()
		}
		logging.Warn(fmt.Sprintf("failed to parse %s count", kind), fields)
		return fallback
	}
	return n
}

// SessionNames extracts names in order.
func SessionNames(sessions []Session) []string {
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.Name
	}
	return names
}
