package state

import "github.com/atomicstack/tmux-ui/internal/tmux"

// Sessions holds the last session listing together with the selected row.
// The selection is unset exactly when the listing is empty.
type Sessions struct {
	entries  []tmux.Session
	selected int
	valid    bool
}

// NewSessions returns an empty store.
func NewSessions() *Sessions {
	return &Sessions{}
}

// Entries returns a copy of the current listing.
func (s *Sessions) Entries() []tmux.Session {
	return cloneSessions(s.entries)
}

func (s *Sessions) Len() int { return len(s.entries) }

// Selected reports the selected index, if any.
func (s *Sessions) Selected() (int, bool) {
	if !s.valid {
		return 0, false
	}
	return s.selected, true
}

// Current returns the selected session.
func (s *Sessions) Current() (tmux.Session, bool) {
	if !s.valid {
		return tmux.Session{}, false
	}
	return s.entries[s.selected], true
}

// Replace swaps in a fresh listing and repairs the selection: kept when still
// in bounds, clamped to the last row otherwise, first row when there was no
// selection before.
func (s *Sessions) Replace(entries []tmux.Session) {
	s.entries = cloneSessions(entries)
	switch {
	case len(s.entries) == 0:
		s.selected = 0
		s.valid = false
	case !s.valid:
		s.selected = 0
		s.valid = true
	case s.selected >= len(s.entries):
		s.selected = len(s.entries) - 1
	}
}

// Next moves the selection down, wrapping to the first row.
func (s *Sessions) Next() bool {
	return s.move(1)
}

// Prev moves the selection up, wrapping to the last row.
func (s *Sessions) Prev() bool {
	return s.move(-1)
}

func (s *Sessions) move(delta int) bool {
	n := len(s.entries)
	if n == 0 {
		return false
	}
	old := s.selected
	if !s.valid {
		s.selected = 0
		s.valid = true
		return true
	}
	s.selected = ((s.selected+delta)%n + n) % n
	return s.selected != old
}

func cloneSessions(entries []tmux.Session) []tmux.Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Session, len(entries))
	copy(dup, entries)
	return dup
}
