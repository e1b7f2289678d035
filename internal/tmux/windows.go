package tmux

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-ui/internal/logging/events"
)

// ListWindows returns the windows of session. Unlike ListSessions, an unknown
// session is an error.
func (c *Client) ListWindows(session string) ([]Window, error) {
	out, err := c.output("list-windows", "-t", session, "-F", windowFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows of session %s: %w", session, err)
	}
	return parseWindows(out, c.countFallback), nil
}

// CreateWindow opens a window in session. An empty name lets tmux choose.
func (c *Client) CreateWindow(session, name string) error {
	events.Window.Create(session, name)
	args := []string{"new-window", "-t", session}
	if strings.TrimSpace(name) != "" {
		args = append(args, "-n", name)
	}
	if err := c.run(args...); err != nil {
		return fmt.Errorf("failed to create window in session %s: %w", session, err)
	}
	return nil
}

func (c *Client) KillWindow(target string) error {
	events.Window.Kill(target)
	if err := c.run("kill-window", "-t", target); err != nil {
		return fmt.Errorf("failed to kill window %s: %w", target, err)
	}
	return nil
}

func parseWindows(out string, fallback int) []Window {
	windows := []Window{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, fieldSep)
		if len(parts) < 4 {
			continue
		}
		windows = append(windows, Window{
			ID:     parts[0],
			Name:   parts[1],
			Panes:  parseCount(parts[2], fallback, "pane"),
			Active: strings.TrimSpace(parts[3]) == "1",
		})
	}
	return windows
}
