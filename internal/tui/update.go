package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"questbook/internal/timer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Discard):
			_ = m.session.Discard()
			m.outcome = OutcomeDiscarded
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			if m.session.State() == timer.StateRunning {
				_ = m.session.Pause()
			} else {
				_ = m.session.Resume()
			}

		case key.Matches(msg, m.keys.Finish):
			elapsed, err := m.session.Finish()
			if err != nil {
				return m, nil
			}
			m.outcome = OutcomeFinished
			m.elapsed = elapsed
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
