package storage

import "errors"

// ErrNotFound is returned by Get for keys that have never been set.
var ErrNotFound = errors.New("key not found")

// Provider is the persistent string key-value store everything else sits on.
// Writes are best-effort: callers log failures and keep going rather than
// surfacing them to the user.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// KV
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error

	// Utils
	Path() string
}
