// Package ui contains the Bubble Tea program that powers the tmux session
// manager. The Model type focuses on message orchestration, while dedicated
// helpers own key handling, session refreshes, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so key presses, resizes, and
//     poll ticks are handled by focused functions.
//   - Key presses are dispatched on the current InputMode. Viewing maps keys
//     to commands through the KeyMap, while the two prompt modes
//     (CreatingSession and RenamingSession) treat printable input as text.
//   - A poll tick fires every 100ms. It bounds how long the loop waits for
//     input and, when auto refresh is enabled, re-reads the session listing
//     while the user is viewing.
//
// State ownership:
//   - The session listing and selected row live in internal/state.Sessions,
//     which keeps the selection valid whenever the listing changes.
//   - Every registry call is synchronous and happens inside Update. Failures
//     never stop the loop; they are reported on the status line instead.
//
// Attaching:
//   - Outside tmux, attaching cannot happen while the program owns the
//     terminal. The model records the target and quits; internal/app performs
//     the attach after the program has released the terminal.
package ui
