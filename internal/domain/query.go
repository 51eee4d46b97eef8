package domain

import "time"

// TaskQuery is a question or issue an employee raised against a task.
type TaskQuery struct {
	ID             int64
	TaskID         int64
	UserID         int64
	Subject        string
	Description    string
	AttachmentPath string
	Status         QueryStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
