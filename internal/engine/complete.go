package engine

import (
	"regexp"
	"strconv"
	"strings"

	"questbook/internal/models"
)

var durationPattern = regexp.MustCompile(`\((\d+)\s*min\)`)

const defaultDurationMin = 30

// parseDuration extracts "(NN min)" from a task's display text. Tasks
// without a parseable duration default to 30 minutes.
func parseDuration(text string) int {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return defaultDurationMin
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultDurationMin
	}
	return n
}

// taskName strips the "(NN min)" suffix, leaving the bare name for the
// ledger.
func taskName(text string) string {
	name, _, _ := strings.Cut(text, "(")
	return strings.TrimSpace(name)
}

// CompleteDaily transitions the daily task at index to completed and writes
// a ledger record. Terminal states reject further transitions; the only way
// back is Undo.
func (s *Service) CompleteDaily(token string, index int) (models.CompletionRecord, error) {
	if token == "" {
		return models.CompletionRecord{}, ErrNoUser
	}

	age, err := s.AccountAge(token)
	if err != nil || age < 1 {
		s.log.Error("cannot complete task without valid account age", "err", err)
		return models.CompletionRecord{}, ErrNoUser
	}

	// A snapshot from an earlier day describes tasks that are no longer on
	// the list; completing against it would stamp the record with the wrong
	// day. The caller has to reselect first.
	state := s.DailyTasksState(token)
	if state == nil || state.AccountAge != age || index < 0 || index >= len(state.Tasks) {
		return models.CompletionRecord{}, ErrTaskNotFound
	}

	task := state.Tasks[index]
	if task.Status != models.TaskStatusDefault {
		return models.CompletionRecord{}, ErrAlreadyProcessed
	}

	record, err := s.AppendRecord(token, models.CompletionRecord{
		Day:         age,
		TaskName:    taskName(task.Text),
		Category:    NormalizeCategory(task.Category),
		Duration:    parseDuration(task.Text),
		IsDaily:     1,
		CompletedAt: s.now().UnixMilli(),
	})
	if err != nil {
		return models.CompletionRecord{}, err
	}

	state.Tasks[index].Status = models.TaskStatusCompleted
	s.saveDailyTasksState(token, *state)
	s.notifyTasksChanged()
	return record, nil
}

// CancelDaily flips the daily task at index to canceled. No ledger write:
// the task stays visible, struck out, until the next content regeneration.
func (s *Service) CancelDaily(token string, index int) error {
	if token == "" {
		return ErrNoUser
	}

	age, err := s.AccountAge(token)
	if err != nil || age < 1 {
		return ErrNoUser
	}

	state := s.DailyTasksState(token)
	if state == nil || state.AccountAge != age || index < 0 || index >= len(state.Tasks) {
		return ErrTaskNotFound
	}
	if state.Tasks[index].Status != models.TaskStatusDefault {
		return ErrAlreadyProcessed
	}

	state.Tasks[index].Status = models.TaskStatusCanceled
	s.saveDailyTasksState(token, *state)
	s.notifyTasksChanged()
	return nil
}

// CompleteAdditional writes a ledger record for the user-created task and
// removes it from the live list. The record keeps the task's id so Undo can
// restore it in place.
func (s *Service) CompleteAdditional(token, taskID string) (models.CompletionRecord, error) {
	if token == "" {
		return models.CompletionRecord{}, ErrNoUser
	}

	tasks := s.AdditionalTasks(token)
	idx := -1
	for i, t := range tasks {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.CompletionRecord{}, ErrTaskNotFound
	}
	task := tasks[idx]

	age, err := s.AccountAge(token)
	if err != nil || age < 1 {
		s.log.Error("cannot complete task without valid account age", "err", err)
		return models.CompletionRecord{}, ErrNoUser
	}

	record, err := s.AppendRecord(token, models.CompletionRecord{
		Day:            age,
		TaskName:       taskName(task.Text),
		Category:       NormalizeCategory(task.Category),
		Duration:       parseDuration(task.Text),
		IsDaily:        0,
		CompletedAt:    s.now().UnixMilli(),
		OriginalTaskID: task.ID,
	})
	if err != nil {
		return models.CompletionRecord{}, err
	}

	s.saveAdditionalTasks(token, append(tasks[:idx:idx], tasks[idx+1:]...))
	s.notifyTasksChanged()
	return record, nil
}
