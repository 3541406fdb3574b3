package engine

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"questbook/internal/content"
	"questbook/internal/models"
	"questbook/internal/storage"
)

// Service is the task and completion-record engine. It owns every state
// transition over the key-value store; UI layers only render what it
// returns.
type Service struct {
	store   storage.Provider
	library *content.Library
	log     *log.Logger

	now       func() time.Time
	rng       *rand.Rand
	listeners []func()
}

type Option func(*Service)

// WithClock overrides the wall clock, used by tests to cross day boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand overrides the random source used for challenge selection.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.log = logger }
}

func New(store storage.Provider, library *content.Library, opts ...Option) *Service {
	s := &Service{
		store:   store,
		library: library,
		log:     log.Default(),
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Library exposes the static content for display layers.
func (s *Service) Library() *content.Library {
	return s.library
}

// DailyQuote picks the quote shown on the home view.
func (s *Service) DailyQuote() models.Quote {
	return s.library.RandomQuote(s.rng)
}

// OnTasksChanged registers a callback fired after any mutation of the task
// lists so dependent views can refresh.
func (s *Service) OnTasksChanged(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notifyTasksChanged() {
	for _, fn := range s.listeners {
		fn()
	}
}

// getJSON reads and decodes a stored JSON value. Missing keys and parse
// failures both report ok=false; malformed data is treated as absent.
func (s *Service) getJSON(key string, v any) bool {
	raw, err := s.store.Get(key)
	if err == storage.ErrNotFound {
		return false
	}
	if err != nil {
		s.log.Error("storage read failed", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.Warn("discarding malformed stored value", "key", key, "err", err)
		return false
	}
	return true
}

// setJSON encodes and stores a JSON value. Write failures are logged and
// absorbed; the app stays usable on a failed persist.
func (s *Service) setJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("failed to encode value", "key", key, "err", err)
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		s.log.Error("storage write failed", "key", key, "err", err)
	}
}
