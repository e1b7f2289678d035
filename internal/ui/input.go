package ui

import (
	"unicode"

	"github.com/atomicstack/tmux-ui/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg dispatches a key press on the current mode. Bubble Tea only
// delivers presses, so repeats and releases never reach the handlers.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	events.UI.Key(m.mode.String(), keyMsg.String())
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	var quit bool
	switch m.mode {
	case ModeViewing:
		quit = m.handleViewingKey(keyMsg)
	case ModeCreatingSession:
		quit = m.handleCreatingKey(keyMsg)
	case ModeRenamingSession:
		quit = m.handleRenamingKey(keyMsg)
	}
	if quit {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleViewingKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.setStatus(m.keys.Legend())
	case key.Matches(msg, m.keys.New):
		m.startCreate()
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Attach):
		return m.attachSelected()
	case key.Matches(msg, m.keys.Rename):
		m.startRename()
	case key.Matches(msg, m.keys.NewWindow):
		m.newWindowInSelected()
	case key.Matches(msg, m.keys.Detach):
		m.detachSelected()
	case key.Matches(msg, m.keys.Refresh):
		m.settle("Sessions refreshed!")
	case key.Matches(msg, m.keys.Up):
		if m.sessions.Prev() {
			m.noteCursor()
		}
	case key.Matches(msg, m.keys.Down):
		if m.sessions.Next() {
			m.noteCursor()
		}
	}
	return false
}

func (m *Model) handleCreatingKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		m.confirmCreate()
	case tea.KeyEsc:
		m.cancelPrompt()
	default:
		m.editInput(msg)
	}
	return false
}

func (m *Model) handleRenamingKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		m.confirmRename()
	case tea.KeyEsc:
		m.cancelPrompt()
	default:
		m.editInput(msg)
	}
	return false
}

// editInput applies a key press to the prompt text. Non-printable keys are
// ignored.
func (m *Model) editInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.input == "" {
			return
		}
		runes := []rune(m.input)
		m.input = string(runes[:len(runes)-1])
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.input += string(r)
			}
		}
	}
}

func (m *Model) noteCursor() {
	if idx, ok := m.sessions.Selected(); ok {
		events.UI.Cursor(idx)
	}
}
