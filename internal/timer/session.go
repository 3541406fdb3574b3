package timer

import (
	"errors"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateFinished
	StateDiscarded
)

var (
	ErrNotRunning = errors.New("timer is not running")
	ErrNotPaused  = errors.New("timer is not paused")
	ErrDone       = errors.New("timer session already ended")
)

// Session is an ephemeral pause/resume stopwatch bound to one task. Elapsed
// time is always recomputed from wall-clock timestamps, never from tick
// counting, so a suspended process loses nothing.
type Session struct {
	TaskText string

	state          State
	startedAt      time.Time
	pauseStartedAt time.Time
	totalPause     time.Duration
	frozenElapsed  time.Duration
	now            func() time.Time
}

type Option func(*Session)

// WithClock overrides the wall clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(taskText string, opts ...Option) *Session {
	s := &Session{
		TaskText: taskText,
		state:    StateIdle,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrDone
	}
	s.startedAt = s.now()
	s.state = StateRunning
	return nil
}

func (s *Session) Pause() error {
	if s.state != StateRunning {
		return ErrNotRunning
	}
	s.pauseStartedAt = s.now()
	s.frozenElapsed = s.now().Sub(s.startedAt) - s.totalPause
	s.state = StatePaused
	return nil
}

func (s *Session) Resume() error {
	if s.state != StatePaused {
		return ErrNotPaused
	}
	s.totalPause += s.now().Sub(s.pauseStartedAt)
	s.pauseStartedAt = time.Time{}
	s.state = StateRunning
	return nil
}

// Elapsed returns the running time excluding pauses. While paused it stays
// frozen at the value computed at the moment of pausing.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case StateRunning:
		return s.now().Sub(s.startedAt) - s.totalPause
	case StatePaused:
		return s.frozenElapsed
	case StateFinished:
		return s.frozenElapsed
	default:
		return 0
	}
}

// Finish ends the session and returns the final elapsed duration. The
// caller records the completion; the ledger keeps the task's declared
// duration, not this value.
func (s *Session) Finish() (time.Duration, error) {
	switch s.state {
	case StateRunning, StatePaused:
		s.frozenElapsed = s.Elapsed()
		s.state = StateFinished
		return s.frozenElapsed, nil
	default:
		return 0, ErrDone
	}
}

// Discard ends the session with no side effects.
func (s *Session) Discard() error {
	switch s.state {
	case StateRunning, StatePaused:
		s.state = StateDiscarded
		return nil
	default:
		return ErrDone
	}
}
