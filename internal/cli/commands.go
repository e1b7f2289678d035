package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/tmux-ui/internal/format/table"
	"github.com/atomicstack/tmux-ui/internal/tmux"
	"github.com/spf13/cobra"
)

const (
	attachedMarker = "●"
	detachedMarker = "○"
)

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tmux sessions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := rt.client.ListSessions()
			if err != nil {
				return err
			}
			writeSessions(cmd.OutOrStdout(), sessions)
			return nil
		},
	}
}

func writeSessions(w io.Writer, sessions []tmux.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No tmux sessions found.")
		return
	}
	fmt.Fprintln(w, "tmux sessions:")
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		marker := detachedMarker
		if s.Attached {
			marker = attachedMarker
		}
		rows[i] = []string{marker, s.Name, "-", strconv.Itoa(s.Windows), "window(s)"}
	}
	for _, line := range table.Format(rows, countColumn(3)) {
		fmt.Fprintln(w, "  "+line)
	}
}

func newNewCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new tmux session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := rt.client.CreateSession(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session '%s' created.\n", name)
			return nil
		},
	}
}

func newKillCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "kill <name>",
		Short: "Kill a tmux session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := rt.client.KillSession(name); err != nil {
				return rt.withSuggestion(name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session '%s' killed.\n", name)
			return nil
		},
	}
}

func newAttachCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <name>",
		Short: "Attach to a tmux session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if rt.client.IsInsideTmux() {
				if err := rt.client.SwitchClient(name); err != nil {
					return rt.withSuggestion(name, err)
				}
				return nil
			}
			if err := rt.client.AttachSession(name); err != nil {
				return rt.withSuggestion(name, err)
			}
			return nil
		},
	}
}

func newWindowsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "windows <session>",
		Short: "List the windows of a tmux session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			windows, err := rt.client.ListWindows(name)
			if err != nil {
				return rt.withSuggestion(name, err)
			}
			writeWindows(cmd.OutOrStdout(), name, windows)
			return nil
		},
	}
}

func writeWindows(w io.Writer, session string, windows []tmux.Window) {
	if len(windows) == 0 {
		fmt.Fprintf(w, "No windows found in session '%s'.\n", session)
		return
	}
	fmt.Fprintf(w, "windows in '%s':\n", session)
	rows := make([][]string, len(windows))
	for i, win := range windows {
		marker := detachedMarker
		if win.Active {
			marker = attachedMarker
		}
		rows[i] = []string{marker, win.ID, win.Name, "-", strconv.Itoa(win.Panes), "pane(s)"}
	}
	for _, line := range table.Format(rows, countColumn(4)) {
		fmt.Fprintln(w, "  "+line)
	}
}

func newKillWindowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "kill-window <target>",
		Short: "Kill a tmux window (session:index or window id)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if err := rt.client.KillWindow(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Window '%s' killed.\n", target)
			return nil
		},
	}
}

// countColumn right-aligns the column at index so counts line up by digit.
func countColumn(index int) []table.Alignment {
	alignments := make([]table.Alignment, index+1)
	alignments[index] = table.AlignRight
	return alignments
}
