package testutil

import (
	"fmt"
	"time"

	"github.com/flowtik/flowtik/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithEmail(email string) UserOption {
	return func(u *domain.User) {
		u.Email = email
	}
}

// NewTestUser builds a user fixture. IDs are assigned by the database on
// insert; emails default to a unique value so tests never collide.
func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{
		Name:      name,
		Email:     fmt.Sprintf("%s-%s@example.test", name, uuid.New().String()[:8]),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Task options
type TaskOption func(*domain.Task)

func WithEstimate(hours float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = hours
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithCreatedBy(userID int64) TaskOption {
	return func(t *domain.Task) {
		t.CreatedByID = userID
	}
}

// NewTestTask builds a task fixture assigned to the given user. The creator
// defaults to the assignee.
func NewTestTask(assigneeID int64, title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		Title:          title,
		EstimatedHours: 2.0,
		AssignedToID:   assigneeID,
		CreatedByID:    assigneeID,
		CreatedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interval options
type WorkIntervalOption func(*domain.WorkInterval)

func WithWorkStart(start time.Time) WorkIntervalOption {
	return func(w *domain.WorkInterval) {
		w.StartTime = start
	}
}

func WithWorkEnd(end time.Time) WorkIntervalOption {
	return func(w *domain.WorkInterval) {
		w.EndTime = &end
	}
}

// NewTestWorkInterval builds an open work interval starting now.
func NewTestWorkInterval(taskID, userID int64, opts ...WorkIntervalOption) *domain.WorkInterval {
	w := &domain.WorkInterval{
		TaskID:    taskID,
		UserID:    userID,
		StartTime: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type BreakIntervalOption func(*domain.BreakInterval)

func WithBreakStart(start time.Time) BreakIntervalOption {
	return func(b *domain.BreakInterval) {
		b.StartTime = start
	}
}

func WithBreakEnd(end time.Time) BreakIntervalOption {
	return func(b *domain.BreakInterval) {
		b.EndTime = &end
	}
}

func WithReason(reason string) BreakIntervalOption {
	return func(b *domain.BreakInterval) {
		b.Reason = reason
	}
}

// NewTestBreakInterval builds an open break interval starting now.
func NewTestBreakInterval(taskID, userID int64, opts ...BreakIntervalOption) *domain.BreakInterval {
	b := &domain.BreakInterval{
		TaskID:    taskID,
		UserID:    userID,
		StartTime: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewTestQuery builds an open task query fixture.
func NewTestQuery(taskID, userID int64, subject string) *domain.TaskQuery {
	now := time.Now().UTC()
	return &domain.TaskQuery{
		TaskID:    taskID,
		UserID:    userID,
		Subject:   subject,
		Status:    domain.QueryOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
