package engine

import (
	"questbook/internal/models"
	"questbook/internal/storage"
)

// ClassKey returns the user's persisted classification key, or "" when the
// user has not finished onboarding.
func (s *Service) ClassKey(token string) string {
	if token == "" {
		return ""
	}
	raw, err := s.store.Get(storage.ClassKey(token))
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Error("failed to read class key", "err", err)
		}
		return ""
	}
	return raw
}

// SetClassKey persists the classification key. The key is immutable once
// set unless force is given.
func (s *Service) SetClassKey(token, key string, force bool) error {
	if token == "" {
		return ErrNoUser
	}
	if existing := s.ClassKey(token); existing != "" && !force {
		return nil
	}
	return s.store.Set(storage.ClassKey(token), key)
}

// DailyTasksState returns the saved daily task snapshot, or nil when absent
// or malformed.
func (s *Service) DailyTasksState(token string) *models.DailyTasksState {
	if token == "" {
		return nil
	}
	var state models.DailyTasksState
	if !s.getJSON(storage.DailyTasksKey(token), &state) {
		return nil
	}
	if state.AccountAge <= 0 {
		return nil
	}
	valid := state.Tasks[:0]
	for _, t := range state.Tasks {
		if t.Text == "" || t.Status == "" {
			continue
		}
		valid = append(valid, t)
	}
	state.Tasks = valid
	return &state
}

func (s *Service) saveDailyTasksState(token string, state models.DailyTasksState) {
	s.setJSON(storage.DailyTasksKey(token), state)
}

// AdditionalTasks loads the user-created task list, dropping entries that
// fail shape validation.
func (s *Service) AdditionalTasks(token string) []models.AdditionalTask {
	if token == "" {
		return nil
	}
	var tasks []models.AdditionalTask
	if !s.getJSON(storage.AdditionalTasksKey(token), &tasks) {
		return nil
	}
	valid := tasks[:0]
	for _, t := range tasks {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	return valid
}

func (s *Service) saveAdditionalTasks(token string, tasks []models.AdditionalTask) {
	s.setJSON(storage.AdditionalTasksKey(token), tasks)
}

// AddAdditionalTask appends a user-created task to the list.
func (s *Service) AddAdditionalTask(token string, task models.AdditionalTask) error {
	if token == "" {
		return ErrNoUser
	}
	if !task.Valid() {
		return ErrTaskNotFound
	}
	task.Category = NormalizeCategory(task.Category)
	if task.Color == "" {
		task.Color = CategoryColor(task.Category)
	}

	tasks := s.AdditionalTasks(token)
	tasks = append(tasks, task)
	s.saveAdditionalTasks(token, tasks)
	s.notifyTasksChanged()
	return nil
}

// RemoveAdditionalTask deletes a user-created task outright. This is the
// cancel path for additional tasks: no ledger write, no struck-out state.
func (s *Service) RemoveAdditionalTask(token, taskID string) error {
	if token == "" {
		return ErrNoUser
	}

	tasks := s.AdditionalTasks(token)
	for i, t := range tasks {
		if t.ID == taskID {
			s.saveAdditionalTasks(token, append(tasks[:i], tasks[i+1:]...))
			s.notifyTasksChanged()
			return nil
		}
	}
	return ErrTaskNotFound
}
