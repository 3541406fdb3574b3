package models

import "fmt"

type TaskStatus string

const (
	TaskStatusDefault   TaskStatus = "default"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCanceled  TaskStatus = "canceled"
)

// SlotKey identifies a daily task position inside a challenge. Status is
// preserved across content regeneration by this key, with exact text match
// as fallback for states written before slot keys existed.
type SlotKey struct {
	ChallengeID string `json:"challenge_id"`
	Week        int    `json:"week"`
	Day         int    `json:"day"`
	Slot        int    `json:"slot"`
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s/w%d/d%d/s%d", k.ChallengeID, k.Week, k.Day, k.Slot)
}

func (k SlotKey) IsZero() bool {
	return k.ChallengeID == "" && k.Week == 0 && k.Day == 0 && k.Slot == 0
}

// DailyTask is one of the (normally two) challenge-derived tasks for a day.
// Text is re-derived from content on every load; Status survives via SlotKey.
type DailyTask struct {
	Key      SlotKey    `json:"key,omitzero"`
	Text     string     `json:"text"`
	Status   TaskStatus `json:"status"`
	Category string     `json:"category,omitempty"`
}

// DailyTasksState is the persisted per-day snapshot of the daily task list.
// AccountAge stamps which day the snapshot belongs to; a snapshot from a
// different day is discarded and the tasks regenerated.
type DailyTasksState struct {
	Tasks      []DailyTask `json:"tasks"`
	AccountAge int         `json:"accountAge"`
}

// AdditionalTask is a user-created task outside the challenge content.
// ShowImage and Image are carried for data compatibility only.
type AdditionalTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Category  string `json:"category,omitempty"`
	Color     string `json:"color,omitempty"`
	Completed bool   `json:"completed"`
	ShowImage bool   `json:"showImage"`
	Image     string `json:"image,omitempty"`
}

// Valid reports whether a deserialized additional task has the shape the
// rest of the app relies on. Invalid entries are dropped on load.
func (t AdditionalTask) Valid() bool {
	return t.ID != "" && t.Text != ""
}
