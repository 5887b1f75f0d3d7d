package models

import "time"

// ActivityEntry is an immutable audit record of a lifecycle event on a task.
// TaskID is a reference, not ownership: the task may since have been deleted
// and the entry stays.
type ActivityEntry struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	Action    string    `json:"action"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}
