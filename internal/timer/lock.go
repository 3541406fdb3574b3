package timer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// ErrSessionActive is returned when another questbook process already holds
// the timer lock.
var ErrSessionActive = errors.New("a timer session is already running")

const lockFileName = "timer.lock"

// Lock enforces the single-timer-at-a-time invariant across processes via
// a pid file. A lock whose pid no longer maps to a live process is treated
// as stale and replaced.
type Lock struct {
	path string
}

// Acquire takes the timer lock under dir.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	path := filepath.Join(dir, lockFileName)
	if data, err := os.ReadFile(path); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			if proc, _ := ps.FindProcess(pid); proc != nil {
				return nil, ErrSessionActive
			}
		}
		// Stale lock: owning process is gone.
		_ = os.Remove(path)
	}

	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lock file: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release drops the lock. Safe to call more than once.
func (l *Lock) Release() {
	_ = os.Remove(l.path)
}
