package service

import (
	"context"
	"time"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/timeutil"
)

type taskService struct {
	tasks     repository.TaskRepo
	users     repository.UserRepo
	intervals repository.IntervalRepo
	queries   repository.QueryRepo

	now func() time.Time
}

// NewTaskService creates the task CRUD service with interval-derived
// overview stats.
func NewTaskService(
	tasks repository.TaskRepo,
	users repository.UserRepo,
	intervals repository.IntervalRepo,
	queries repository.QueryRepo,
) TaskService {
	return &taskService{
		tasks:     tasks,
		users:     users,
		intervals: intervals,
		queries:   queries,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if _, err := s.users.GetByID(ctx, t.AssignedToID); err != nil {
		return err
	}
	if t.CreatedByID == 0 {
		t.CreatedByID = t.AssignedToID
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) Overview(ctx context.Context, id int64) (*contract.TaskOverview, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	overview, err := s.buildOverview(ctx, task)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *taskService) List(ctx context.Context) ([]contract.TaskOverview, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildOverviews(ctx, tasks)
}

func (s *taskService) ListByAssignee(ctx context.Context, userID int64) ([]contract.TaskOverview, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildOverviews(ctx, tasks)
}

func (s *taskService) Complete(ctx context.Context, id int64) error {
	return s.tasks.MarkCompleted(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) buildOverviews(ctx context.Context, tasks []*domain.Task) ([]contract.TaskOverview, error) {
	overviews := make([]contract.TaskOverview, 0, len(tasks))
	for _, task := range tasks {
		o, err := s.buildOverview(ctx, task)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, nil
}

func (s *taskService) buildOverview(ctx context.Context, task *domain.Task) (contract.TaskOverview, error) {
	now := s.now()

	intervals, err := s.intervals.ListWorkByTask(ctx, task.ID)
	if err != nil {
		return contract.TaskOverview{}, err
	}

	var total float64
	var active bool
	var lastStart *time.Time
	for _, w := range intervals {
		total += timeutil.ElapsedHours(w.StartTime, w.EndTime, now)
		if w.Open() {
			active = true
			start := w.StartTime
			lastStart = &start
		}
	}

	queryCount, err := s.queries.CountByTask(ctx, task.ID)
	if err != nil {
		return contract.TaskOverview{}, err
	}

	return contract.TaskOverview{
		TaskID:           task.ID,
		Title:            task.Title,
		Description:      task.Description,
		EstimatedHours:   task.EstimatedHours,
		AssignedToID:     task.AssignedToID,
		AssignedToName:   userNameOrEmpty(ctx, s.users, task.AssignedToID),
		Completed:        task.Completed,
		CreatedAt:        task.CreatedAt,
		TotalHoursWorked: total,
		CurrentlyActive:  active,
		LastStartTime:    lastStart,
		QueryCount:       queryCount,
	}, nil
}
