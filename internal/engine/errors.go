package engine

import "errors"

var (
	// ErrNoUser is returned by mutating operations called without a user
	// token. Callers treat it as a no-op condition, not a crash.
	ErrNoUser = errors.New("no user token")

	// ErrRecordNotFound is returned when a completion record id does not
	// exist in the ledger. Undo surfaces this to the user.
	ErrRecordNotFound = errors.New("completion record not found")

	// ErrInvalidDay rejects ledger appends with a non-positive day.
	ErrInvalidDay = errors.New("completion record day must be positive")

	// ErrInvalidDuration rejects negative duration corrections.
	ErrInvalidDuration = errors.New("duration must be non-negative")

	// ErrAlreadyProcessed is returned when a task is completed or canceled
	// twice. The first transition is terminal.
	ErrAlreadyProcessed = errors.New("task already completed or canceled")

	// ErrTaskNotFound is returned when a task index or id does not resolve
	// against the live task lists.
	ErrTaskNotFound = errors.New("task not found")
)
