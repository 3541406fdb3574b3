package models

// CompletionRecord is the durable audit entry for one completed task.
// Records are immutable once written except for duration correction.
type CompletionRecord struct {
	ID             int    `json:"id"`
	Day            int    `json:"day"`
	TaskName       string `json:"task_name"`
	Category       string `json:"category"`
	Duration       int    `json:"duration"`
	IsDaily        int    `json:"is_daily"`
	CompletedAt    int64  `json:"completed_at"`
	OriginalTaskID string `json:"original_task_id,omitempty"`
}

// Valid reports whether a deserialized record has a usable shape.
// Malformed entries are filtered out on load rather than failing the list.
func (r CompletionRecord) Valid() bool {
	if r.ID <= 0 || r.Day <= 0 {
		return false
	}
	if r.TaskName == "" {
		return false
	}
	if r.IsDaily != 0 && r.IsDaily != 1 {
		return false
	}
	return r.Duration >= 0 && r.CompletedAt > 0
}
