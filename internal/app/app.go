package app

import (
	"fmt"
	"time"

	"github.com/atomicstack/tmux-ui/internal/logging/events"
	"github.com/atomicstack/tmux-ui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Keys        *ui.KeyMap
	AutoRefresh time.Duration
	Width       int
	Height      int
}

// Registry is the tmux surface the interactive mode needs: everything the
// controller drives plus the attach hand-off.
type Registry interface {
	ui.Registry
	AttachSession(name string) error
}

type program interface {
	Run() (tea.Model, error)
}

// newProgram is swapped in tests to observe the terminal lifecycle.
var newProgram = func(model tea.Model, opts ...tea.ProgramOption) program {
	return tea.NewProgram(model, opts...)
}

// Run bootstraps and executes the Bubble Tea program. The program owns the
// terminal for the whole of its Run call and restores it on every exit path;
// an attach requested by the user happens only after that.
func Run(cfg Config, registry Registry) error {
	model := ui.NewModel(registry, ui.Options{
		Keys:        cfg.Keys,
		AutoRefresh: cfg.AutoRefresh,
		Width:       cfg.Width,
		Height:      cfg.Height,
	})
	p := newProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	// A bare ErrProgramKilled comes from Kill. Loop failures and recovered
	// panics arrive wrapped in it and are fatal.
	if err == tea.ErrProgramKilled {
		events.App.Exit("", nil)
		return nil
	}
	if err != nil {
		events.App.Exit("", err)
		return fmt.Errorf("run ui: %w", err)
	}

	target := attachTarget(final, model)
	events.App.Exit(target, nil)
	if target == "" {
		return nil
	}
	events.App.Attach(target)
	if err := registry.AttachSession(target); err != nil {
		return fmt.Errorf("attach to session %s: %w", target, err)
	}
	return nil
}

func attachTarget(final tea.Model, fallback *ui.Model) string {
	if m, ok := final.(*ui.Model); ok && m != nil {
		return m.AttachTarget()
	}
	return fallback.AttachTarget()
}
