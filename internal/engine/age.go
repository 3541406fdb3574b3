package engine

import (
	"strconv"
	"time"

	"questbook/internal/storage"
)

const dayMillis = 24 * 60 * 60 * 1000

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AccountAge returns the 1-based day number since the account's first
// recorded activity. The creation timestamp is set on first need and never
// moves afterwards, except via the dev-only AdjustCreationDay.
func (s *Service) AccountAge(token string) (int, error) {
	if token == "" {
		return 1, ErrNoUser
	}

	key := storage.CreationDateKey(token)
	now := s.now()
	todayStart := startOfDay(now)

	raw, err := s.store.Get(key)
	if err != nil || raw == "" {
		if err != nil && err != storage.ErrNotFound {
			s.log.Error("failed to read creation date", "err", err)
		}
		s.setCreationTimestamp(token, todayStart.UnixMilli())
		return 1, nil
	}

	creationMillis, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		s.log.Warn("invalid creation timestamp, resetting to today", "value", raw)
		s.setCreationTimestamp(token, todayStart.UnixMilli())
		return 1, nil
	}

	creationStart := startOfDay(time.UnixMilli(creationMillis).In(now.Location()))
	if creationStart.After(todayStart) {
		s.log.Warn("creation date is in the future, resetting to today")
		s.setCreationTimestamp(token, todayStart.UnixMilli())
		return 1, nil
	}

	days := int(todayStart.Sub(creationStart)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

func (s *Service) setCreationTimestamp(token string, millis int64) {
	if err := s.store.Set(storage.CreationDateKey(token), strconv.FormatInt(millis, 10)); err != nil {
		s.log.Error("failed to persist creation date", "err", err)
	}
}

// AdjustCreationDay shifts the stored creation timestamp by deltaDays days
// into the past (positive delta raises the account age). Debug tooling
// only; never reachable from normal commands. Decreasing is clamped so the
// age never drops below 1.
func (s *Service) AdjustCreationDay(token string, deltaDays int) error {
	if token == "" {
		return ErrNoUser
	}

	key := storage.CreationDateKey(token)
	now := s.now()
	todayStart := startOfDay(now)

	raw, err := s.store.Get(key)
	if err == storage.ErrNotFound {
		if deltaDays <= 0 {
			// Age is implicitly 1 already; nothing to lower.
			return nil
		}
		// No stored date yet: back-date from today.
		s.setCreationTimestamp(token, todayStart.UnixMilli()-int64(deltaDays)*dayMillis)
		return nil
	}
	if err != nil {
		return err
	}

	current, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		return parseErr
	}

	updated := current - int64(deltaDays)*dayMillis
	if updated >= todayStart.UnixMilli() {
		// Keep the creation day strictly before tomorrow so age stays >= 1.
		updated = todayStart.UnixMilli()
	}

	s.setCreationTimestamp(token, updated)
	return nil
}
