package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-ui/internal/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	titleText = "tmux-ui - Session Manager"

	titleHeight = 3
	// statusLines is the number of text rows inside the status box.
	statusLines  = 2
	statusHeight = statusLines + 2

	selectedPrefix   = ">> "
	unselectedPrefix = "   "

	attachedMarker = "●"
	detachedMarker = "○"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width < 4 {
		width = 4
	}
	listHeight := m.height - titleHeight - statusHeight
	if listHeight < 3 {
		listHeight = 3
	}
	sections := []string{
		m.renderTitle(width),
		m.renderList(width, listHeight),
		m.renderStatus(width),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderTitle(width int) string {
	inner := width - 2
	text := fitText(titleText, inner)
	line := lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Title.Render(text))
	return renderBox("", []string{line}, width, titleHeight)
}

func (m *Model) renderList(width, height int) string {
	entries := m.sessions.Entries()
	inner := width - 2
	rows := height - 2
	selected, hasSelection := m.sessions.Selected()
	m.offset = state.EnsureVisible(m.offset, selected, len(entries), rows)

	lines := make([]string, 0, rows)
	for i := m.offset; i < len(entries) && len(lines) < rows; i++ {
		entry := entries[i]
		marker, base := detachedMarker, styles.DetachedItem
		if entry.Attached {
			marker, base = attachedMarker, styles.AttachedItem
		}
		text := fitText(fmt.Sprintf("%s %s (%d windows)", marker, entry.Name, entry.Windows), inner-len(selectedPrefix))
		if hasSelection && i == selected {
			lines = append(lines, styles.SelectedMarker.Render(selectedPrefix)+styles.SelectedItem.Inherit(*base).Render(text))
			continue
		}
		lines = append(lines, unselectedPrefix+base.Render(text))
	}
	title := fmt.Sprintf("tmux Sessions (%d)", len(entries))
	return renderBox(title, lines, width, height)
}

func (m *Model) renderStatus(width int) string {
	inner := width - 2
	text, style := m.status, styles.Status
	switch m.mode {
	case ModeViewing:
		if m.statusErr {
			style = styles.Error
		}
	case ModeCreatingSession:
		text, style = "New session name: "+m.input, styles.StatusInput
	case ModeRenamingSession:
		text, style = "Rename to: "+m.input, styles.StatusInput
	}
	wrapped := strings.Split(wordwrap.String(text, inner), "\n")
	if len(wrapped) > statusLines {
		last := strings.Join(wrapped[statusLines-1:], " ")
		wrapped = append(wrapped[:statusLines-1], last)
	}
	lines := make([]string, len(wrapped))
	for i, line := range wrapped {
		lines[i] = style.Render(fitText(line, inner))
	}
	return renderBox("Status", lines, width, statusHeight)
}

// renderBox draws a rounded border of the given outer size around lines,
// with an optional title embedded in the top edge.
func renderBox(title string, lines []string, width, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	border := styles.Border

	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	var top string
	if title == "" {
		top = border.Render(tlc + strings.Repeat(hz, innerW) + trc)
	} else {
		titleSeg := " " + fitText(title, innerW-4) + " "
		dashes := innerW - 1 - lipgloss.Width(titleSeg)
		if dashes < 0 {
			dashes = 0
		}
		top = border.Render(tlc+hz) +
			styles.FrameTitle.Render(titleSeg) +
			border.Render(strings.Repeat(hz, dashes)+trc)
	}

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = lines[i]
		}
		if w := lipgloss.Width(content); w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, border.Render(vt)+content+border.Render(vt))
	}
	rows = append(rows, border.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

// fitText truncates plain text to width columns, marking the cut with an
// ellipsis.
func fitText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
