package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title          *lipgloss.Style
	Border         *lipgloss.Style
	FrameTitle     *lipgloss.Style
	AttachedItem   *lipgloss.Style
	DetachedItem   *lipgloss.Style
	SelectedItem   *lipgloss.Style
	SelectedMarker *lipgloss.Style
	Status         *lipgloss.Style
	StatusInput    *lipgloss.Style
	Error          *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	FrameTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	AttachedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	),
	DetachedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusInput: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
