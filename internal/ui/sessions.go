package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-ui/internal/logging/events"
)

const (
	createPrompt = "Enter session name (ESC to cancel, Enter to create):"
	renamePrompt = "Enter new session name (ESC to cancel, Enter to rename):"
)

var errNoSelection = errors.New("no session selected")

// refresh replaces the listing with the registry's current sessions. On
// failure the previous listing and selection are kept.
func (m *Model) refresh() error {
	list, err := m.registry.ListSessions()
	if err != nil {
		return err
	}
	m.sessions.Replace(list)
	m.lastRefresh = m.now()
	events.Session.Refresh(len(list))
	return nil
}

// settle refreshes after a successful mutation and reports msg, or the
// refresh failure if the listing could not be reloaded.
func (m *Model) settle(msg string) {
	if err := m.refresh(); err != nil {
		m.fail("Error refreshing sessions", err)
		return
	}
	m.setStatus(msg)
}

func (m *Model) deleteSelected() {
	current, ok := m.sessions.Current()
	if !ok {
		return
	}
	if err := m.registry.KillSession(current.Name); err != nil {
		m.fail("Error deleting session", err)
		return
	}
	m.settle(fmt.Sprintf("Session '%s' deleted!", current.Name))
}

// attachSelected switches the enclosing client when running inside tmux.
// Otherwise it records the target and reports that the loop should end.
func (m *Model) attachSelected() bool {
	current, ok := m.sessions.Current()
	if !ok {
		return false
	}
	if m.registry.IsInsideTmux() {
		if err := m.registry.SwitchClient(current.Name); err != nil {
			m.fail("Error switching to session", err)
			return false
		}
		m.settle(fmt.Sprintf("Switched to session '%s'", current.Name))
		return false
	}
	m.attachTarget = current.Name
	m.setStatus(fmt.Sprintf("Attaching to session '%s'...", current.Name))
	return true
}

func (m *Model) detachSelected() {
	current, ok := m.sessions.Current()
	if !ok {
		return
	}
	m.registry.DetachSession(current.Name)
	m.settle(fmt.Sprintf("Detached from session '%s'", current.Name))
}

func (m *Model) newWindowInSelected() {
	current, ok := m.sessions.Current()
	if !ok {
		return
	}
	if err := m.registry.CreateWindow(current.Name, ""); err != nil {
		m.fail("Error creating window", err)
		return
	}
	m.settle(fmt.Sprintf("New window created in session '%s'", current.Name))
}

func (m *Model) startCreate() {
	events.Session.NewPrompt(m.sessions.Len())
	m.setMode(ModeCreatingSession)
	m.setStatus(createPrompt)
}

func (m *Model) startRename() {
	current, ok := m.sessions.Current()
	if !ok {
		return
	}
	events.Session.RenamePrompt(current.Name)
	m.setMode(ModeRenamingSession)
	m.setStatus(renamePrompt)
}

// confirmCreate leaves the prompt untouched when the trimmed input is empty.
func (m *Model) confirmCreate() {
	name := strings.TrimSpace(m.input)
	if name == "" {
		return
	}
	m.setMode(ModeViewing)
	if err := m.registry.CreateSession(name); err != nil {
		m.fail("Error creating session", err)
		return
	}
	m.settle(fmt.Sprintf("Session '%s' created!", name))
}

func (m *Model) confirmRename() {
	name := strings.TrimSpace(m.input)
	if name == "" {
		return
	}
	m.setMode(ModeViewing)
	current, ok := m.sessions.Current()
	if !ok {
		m.fail("Error renaming session", errNoSelection)
		return
	}
	if err := m.registry.RenameSession(current.Name, name); err != nil {
		m.fail("Error renaming session", err)
		return
	}
	m.settle(fmt.Sprintf("Session renamed from '%s' to '%s'!", current.Name, name))
}

func (m *Model) cancelPrompt() {
	events.Session.Cancel(m.mode.String(), events.SessionReasonEscape)
	m.setMode(ModeViewing)
	m.setStatus("Cancelled")
}
