package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"questbook/internal/timer"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	clock := clockStyle.Render(formatElapsed(m.session.Elapsed()))
	if m.session.State() == timer.StatePaused {
		clock += "  " + pausedStyle.Render("PAUSED")
	}

	panel := frameStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		taskStyle.Render(m.session.TaskText),
		clock,
	))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panel,
		m.help.View(m.keys),
	)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
