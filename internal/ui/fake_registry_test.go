package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-ui/internal/tmux"
)

// fakeRegistry simulates a tmux server in memory.
type fakeRegistry struct {
	sessions []tmux.Session
	inside   bool

	listErr    error
	createErr  error
	killErr    error
	renameErr  error
	switchErr  error
	windowErr  error
	detachFail bool

	calls []string
}

func newFakeRegistry(sessions ...tmux.Session) *fakeRegistry {
	return &fakeRegistry{sessions: sessions}
}

func (f *fakeRegistry) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeRegistry) mutations() []string {
	out := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		if call != "list" {
			out = append(out, call)
		}
	}
	return out
}

func (f *fakeRegistry) find(name string) int {
	for i, s := range f.sessions {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func (f *fakeRegistry) ListSessions() ([]tmux.Session, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]tmux.Session, len(f.sessions))
	copy(out, f.sessions)
	return out, nil
}

func (f *fakeRegistry) CreateSession(name string) error {
	f.record("create %s", name)
	if f.createErr != nil {
		return f.createErr
	}
	if f.find(name) >= 0 {
		return fmt.Errorf("duplicate session: %s", name)
	}
	f.sessions = append(f.sessions, tmux.Session{Name: name, Windows: 1})
	return nil
}

func (f *fakeRegistry) KillSession(name string) error {
	f.record("kill %s", name)
	if f.killErr != nil {
		return f.killErr
	}
	idx := f.find(name)
	if idx < 0 {
		return fmt.Errorf("can't find session: %s", name)
	}
	f.sessions = append(f.sessions[:idx], f.sessions[idx+1:]...)
	return nil
}

func (f *fakeRegistry) RenameSession(oldName, newName string) error {
	f.record("rename %s %s", oldName, newName)
	if f.renameErr != nil {
		return f.renameErr
	}
	idx := f.find(oldName)
	if idx < 0 {
		return fmt.Errorf("can't find session: %s", oldName)
	}
	f.sessions[idx].Name = newName
	return nil
}

func (f *fakeRegistry) SwitchClient(name string) error {
	f.record("switch %s", name)
	return f.switchErr
}

func (f *fakeRegistry) DetachSession(name string) {
	f.record("detach %s", name)
	if f.detachFail {
		return
	}
	if idx := f.find(name); idx >= 0 {
		f.sessions[idx].Attached = false
	}
}

func (f *fakeRegistry) CreateWindow(session, name string) error {
	f.record("window %s", strings.TrimSpace(session+" "+name))
	if f.windowErr != nil {
		return f.windowErr
	}
	if idx := f.find(session); idx >= 0 {
		f.sessions[idx].Windows++
	}
	return nil
}

func (f *fakeRegistry) IsInsideTmux() bool {
	return f.inside
}

var errBoom = errors.New("boom")
