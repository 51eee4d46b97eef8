package domain

import "time"

type Task struct {
	ID             int64
	Title          string
	Description    string
	EstimatedHours float64
	AssignedToID   int64
	CreatedByID    int64
	Completed      bool
	CreatedAt      time.Time
}
