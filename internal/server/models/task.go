// Package models defines the persisted shapes of the task board: tasks with
// their lifecycle status and manual ordering, and the append-only activity
// log entries recorded against them.
package models

import "time"

// TrackStatus is the lifecycle column a task sits in.
type TrackStatus string

const (
	StatusToDo       TrackStatus = "TO-DO"
	StatusInProgress TrackStatus = "IN-PROGRESS"
	StatusCompleted  TrackStatus = "COMPLETED"
)

// TrackStatuses enumerates the closed set of valid statuses.
var TrackStatuses = []TrackStatus{StatusToDo, StatusInProgress, StatusCompleted}

func (s TrackStatus) Valid() bool {
	for _, known := range TrackStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Category groups tasks by area of life.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
)

// Categories enumerates the closed set of valid categories.
var Categories = []Category{CategoryWork, CategoryPersonal}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Attachment references an uploaded file by its object-storage key. The
// content itself lives in the object store; tasks only carry the keys, in
// upload order.
type Attachment struct {
	FileKey string `json:"fileKey"`
}

// Task is a single card on the board.
//
// OrderIndex defines the manual display order among one owner's tasks,
// ascending, zero topmost. At rest the indices of an owner's tasks are
// exactly {0..n-1}.
type Task struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	DueOn       string       `json:"due_on"`
	TrackStatus TrackStatus  `json:"track_status"`
	Attachments []Attachment `json:"attachments"`
	OrderIndex  int          `json:"orderIndex"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TaskUpdate carries a partial update: nil fields are left untouched.
type TaskUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Category    *Category     `json:"category"`
	DueOn       *string       `json:"due_on"`
	TrackStatus *TrackStatus  `json:"track_status"`
	Attachments *[]Attachment `json:"attachments"`
}

// Empty reports whether the update would change nothing.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.DueOn == nil && u.TrackStatus == nil && u.Attachments == nil
}

// TaskFilter narrows task listings. Zero values mean "no constraint".
// DueBefore/DueAfter compare against the task's due_on date (inclusive).
type TaskFilter struct {
	Category  Category
	Status    TrackStatus
	DueBefore string
	DueAfter  string
}
