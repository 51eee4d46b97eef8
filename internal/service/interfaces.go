package service

import (
	"context"
	"time"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/domain"
)

// TimerService is the per-user timer state machine. The Idle / Running /
// OnBreak state is derived from open intervals on every call; nothing is
// cached between calls.
type TimerService interface {
	Start(ctx context.Context, userID, taskID int64) (*contract.TimerControlResult, error)
	Pause(ctx context.Context, userID int64, reason string) (*contract.TimerControlResult, error)
	Resume(ctx context.Context, userID int64) (*contract.TimerControlResult, error)
	Stop(ctx context.Context, userID int64) (*contract.TimerControlResult, error)
	// ActiveTimer returns nil when the user has no running work interval.
	ActiveTimer(ctx context.Context, userID int64) (*contract.ActiveTimerView, error)
}

// SummaryService computes time-utilization reports from raw intervals.
type SummaryService interface {
	Daily(ctx context.Context, userID int64, date time.Time) (*contract.DailySummary, error)
	Weekly(ctx context.Context, userID int64, weekStart time.Time) (*contract.WeeklySummary, error)
	TaskBreakdown(ctx context.Context, userID int64, date time.Time) ([]contract.TaskTimeSummary, error)
	BreaksForDay(ctx context.Context, userID int64, date time.Time) ([]contract.BreakSummary, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Overview(ctx context.Context, id int64) (*contract.TaskOverview, error)
	List(ctx context.Context) ([]contract.TaskOverview, error)
	ListByAssignee(ctx context.Context, userID int64) ([]contract.TaskOverview, error)
	Complete(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type QueryService interface {
	Raise(ctx context.Context, q *domain.TaskQuery) error
	GetByID(ctx context.Context, id int64) (*domain.TaskQuery, error)
	ListByTask(ctx context.Context, taskID int64) ([]*domain.TaskQuery, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TaskQuery, error)
	Resolve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
