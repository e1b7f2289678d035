// Package cli wires the tmux-ui command tree: the interactive session manager
// and the one-shot list/new/kill/attach/windows commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tmux-ui/internal/app"
	"github.com/atomicstack/tmux-ui/internal/config"
	"github.com/atomicstack/tmux-ui/internal/logging"
	"github.com/atomicstack/tmux-ui/internal/tmux"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

// Client is the tmux surface used by the command tree.
type Client interface {
	app.Registry
	ListWindows(session string) ([]tmux.Window, error)
	KillWindow(target string) error
}

var (
	newClient = func(cfg config.Config) Client {
		return tmux.NewClient(cfg.SocketPath, tmux.WithCountFallback(cfg.CountFallback))
	}
	runApp     = app.Run
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var errNotTerminal = errors.New("interactive mode requires a terminal on stdin")

// configError marks failures that exit with the configuration status.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// runtime is populated by the root command's pre-run hook.
type runtime struct {
	environ []string
	args    []string
	cfg     config.Config
	client  Client
}

// Execute runs the command tree and returns the process exit status.
func Execute(args, environ []string, stdout, stderr io.Writer) int {
	rt := &runtime{environ: environ, args: args}
	root := newRootCmd(rt)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", cfgErr.err)
		return exitConfig
	}
	logging.Error(err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}

func newRootCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tmux-ui",
		Short:         "A terminal user interface for managing tmux sessions",
		Long:          "A TUI for managing tmux sessions, windows, and panes.\n\nRun without a subcommand to start the interactive session manager.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runTUI()
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err: err}
	})
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newTUICmd(rt),
		newListCmd(rt),
		newNewCmd(rt),
		newKillCmd(rt),
		newAttachCmd(rt),
		newWindowsCmd(rt),
		newKillWindowCmd(rt),
	)
	return cmd
}

// prepare resolves configuration, configures logging and builds the client.
func (rt *runtime) prepare(cmd *cobra.Command) error {
	cfg, err := config.FromFlags(cmd.Flags(), rt.environ)
	if err != nil {
		return configError{err: err}
	}
	if err := config.Validate(cfg); err != nil {
		return configError{err: err}
	}
	if err := logging.Configure(logging.Options{
		FilePath: cfg.Logging.FilePath,
		Level:    cfg.Logging.Level,
		Trace:    cfg.Logging.Trace,
	}); err != nil {
		return configError{err: err}
	}
	rt.cfg = cfg
	rt.client = newClient(cfg)
	traceStartup(cmd, rt.args, cfg)
	return nil
}

func (rt *runtime) runTUI() error {
	if !isTerminal() {
		return errNotTerminal
	}
	keys, err := rt.cfg.KeyMap()
	if err != nil {
		return configError{err: err}
	}
	return runApp(app.Config{
		Keys:        &keys,
		AutoRefresh: rt.cfg.AutoRefresh,
		Width:       rt.cfg.Width,
		Height:      rt.cfg.Height,
	}, rt.client)
}

func newTUICmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive TUI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runTUI()
		},
	}
}
