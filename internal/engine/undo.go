package engine

import (
	"fmt"

	"github.com/google/uuid"

	"questbook/internal/models"
)

// UndoOutcome distinguishes what happened to the originating task after a
// completion record was removed. The ledger deletion succeeds in every
// non-error case; only the restoration differs.
type UndoOutcome int

const (
	// UndoRestored: the task is back in its original list with status
	// default.
	UndoRestored UndoOutcome = iota
	// UndoStaleDay: a daily record from a prior day; the ledger entry is
	// gone but the task is not resurrected into today's list.
	UndoStaleDay
	// UndoNotMatched: a daily record from today whose task could not be
	// found in the current list by slot id or text.
	UndoNotMatched
	// UndoDuplicate: an additional task with the record's original id
	// already exists; nothing was inserted.
	UndoDuplicate
)

func (o UndoOutcome) String() string {
	switch o {
	case UndoRestored:
		return "restored"
	case UndoStaleDay:
		return "removed from history only (record was from a previous day)"
	case UndoNotMatched:
		return "removed from history, but the task is no longer in today's list"
	case UndoDuplicate:
		return "removed from history; the task already exists"
	default:
		return "unknown"
	}
}

type UndoResult struct {
	Outcome UndoOutcome
	Record  models.CompletionRecord
}

// Undo reverses a completion: the record is removed from the ledger and the
// originating task restored on a best-effort basis. A missing record id
// fails before any mutation.
func (s *Service) Undo(token string, recordID int) (UndoResult, error) {
	if token == "" {
		return UndoResult{}, ErrNoUser
	}

	// Fail loudly before mutating anything.
	if _, err := s.Record(token, recordID); err != nil {
		return UndoResult{}, err
	}

	record, err := s.RemoveRecord(token, recordID)
	if err != nil {
		return UndoResult{}, err
	}

	var outcome UndoOutcome
	if record.IsDaily == 1 {
		outcome = s.restoreDailyTask(token, record)
	} else {
		outcome = s.restoreAdditionalTask(token, record)
	}

	s.notifyTasksChanged()
	return UndoResult{Outcome: outcome, Record: record}, nil
}

// restoreAdditionalTask rebuilds the additional task from the record,
// reusing the original id when it was captured. A colliding id means the
// task is already present; the insert is skipped and reported.
func (s *Service) restoreAdditionalTask(token string, record models.CompletionRecord) UndoOutcome {
	id := record.OriginalTaskID
	if id == "" {
		id = "restored-" + uuid.New().String()
	}

	tasks := s.AdditionalTasks(token)
	for _, t := range tasks {
		if t.ID == id {
			return UndoDuplicate
		}
	}

	text := record.TaskName
	if record.Duration > 0 {
		text = fmt.Sprintf("%s (%d min)", record.TaskName, record.Duration)
	}
	category := restoreCategory(record.Category)

	tasks = append(tasks, models.AdditionalTask{
		ID:       id,
		Text:     text,
		Category: category,
		Color:    CategoryColor(category),
	})
	s.saveAdditionalTasks(token, tasks)
	return UndoRestored
}

// restoreDailyTask flips a completed daily task back to default, but only
// when the record belongs to the current day. A prior-day record cannot be
// undone into today's list.
func (s *Service) restoreDailyTask(token string, record models.CompletionRecord) UndoOutcome {
	age, err := s.AccountAge(token)
	if err != nil || record.Day != age {
		return UndoStaleDay
	}

	state := s.DailyTasksState(token)
	if state == nil {
		return UndoNotMatched
	}

	text := record.TaskName
	if record.Duration > 0 {
		text = fmt.Sprintf("%s (%d min)", record.TaskName, record.Duration)
	}

	for i := range state.Tasks {
		if state.Tasks[i].Text != text && taskName(state.Tasks[i].Text) != record.TaskName {
			continue
		}
		// Same-named tasks in different categories must not cross-restore.
		if NormalizeCategory(state.Tasks[i].Category) != NormalizeCategory(record.Category) {
			continue
		}
		state.Tasks[i].Status = models.TaskStatusDefault
		s.saveDailyTasksState(token, *state)
		return UndoRestored
	}
	return UndoNotMatched
}
