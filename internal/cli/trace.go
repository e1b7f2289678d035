package cli

import (
	"fmt"
	"os"

	"github.com/atomicstack/tmux-ui/internal/config"
	"github.com/atomicstack/tmux-ui/internal/logging"
	"github.com/atomicstack/tmux-ui/internal/logging/events"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func traceStartup(cmd *cobra.Command, args []string, cfg config.Config) {
	events.App.Start(startupTracePayload(cmd.CommandPath(), cmd.Flags(), args, cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(command string, fs *pflag.FlagSet, args []string, cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{})
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			flags[f.Name] = f.Value.String()
		})
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"command": command,
		"argv":    args,
		"flags":   flags,
		"config":  cfg,
		"logPath": logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = terminalState()
	return payload
}

// terminalState reports, per standard descriptor, "WxH" for a terminal,
// "not a terminal" otherwise, or the size query error.
func terminalState() map[string]string {
	state := make(map[string]string, 3)
	for name, f := range map[string]*os.File{"stdin": os.Stdin, "stdout": os.Stdout, "stderr": os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			state[name] = "not a terminal"
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			state[name] = err.Error()
			continue
		}
		state[name] = fmt.Sprintf("%dx%d", width, height)
	}
	return state
}
