package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"questbook/internal/timer"
)

// Outcome is what the timer screen resolved to once the program exits.
type Outcome int

const (
	OutcomeDiscarded Outcome = iota
	OutcomeFinished
)

type tickMsg time.Time

// Model drives the focus timer screen. The underlying session computes
// elapsed time from wall-clock timestamps, so the tick only refreshes the
// display.
type Model struct {
	session  *timer.Session
	keys     KeyMap
	help     help.Model
	outcome  Outcome
	elapsed  time.Duration
	quitting bool
	width    int
	height   int
}

func NewModel(session *timer.Session) Model {
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Outcome reports whether the user finished or discarded the session.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Elapsed is the final tracked duration, valid once the program has exited.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
