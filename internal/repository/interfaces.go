package repository

import (
	"context"
	"errors"
	"time"

	"github.com/flowtik/flowtik/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkCompleted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// IntervalRepo persists work and break intervals. FindOpen* return
// ErrNotFound when the user has no open interval of that kind.
type IntervalRepo interface {
	CreateWork(ctx context.Context, w *domain.WorkInterval) error
	FindOpenWork(ctx context.Context, userID int64) (*domain.WorkInterval, error)
	CloseWork(ctx context.Context, id int64, end time.Time) error
	ListWorkInRange(ctx context.Context, userID int64, start, end time.Time) ([]*domain.WorkInterval, error)
	ListWorkByTask(ctx context.Context, taskID int64) ([]*domain.WorkInterval, error)

	CreateBreak(ctx context.Context, b *domain.BreakInterval) error
	FindOpenBreak(ctx context.Context, userID int64) (*domain.BreakInterval, error)
	CloseBreak(ctx context.Context, id int64, end time.Time) error
	ListBreaksInRange(ctx context.Context, userID int64, start, end time.Time) ([]*domain.BreakInterval, error)
}

type QueryRepo interface {
	Create(ctx context.Context, q *domain.TaskQuery) error
	GetByID(ctx context.Context, id int64) (*domain.TaskQuery, error)
	ListByTask(ctx context.Context, taskID int64) ([]*domain.TaskQuery, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TaskQuery, error)
	CountByTask(ctx context.Context, taskID int64) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.QueryStatus, at time.Time) error
	Delete(ctx context.Context, id int64) error
}
