package service

import (
	"context"
	"time"

	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/repository"
)

type queryService struct {
	queries repository.QueryRepo
	tasks   repository.TaskRepo
	users   repository.UserRepo

	now func() time.Time
}

// NewQueryService creates the task-query (ticket) service.
func NewQueryService(queries repository.QueryRepo, tasks repository.TaskRepo, users repository.UserRepo) QueryService {
	return &queryService{
		queries: queries,
		tasks:   tasks,
		users:   users,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *queryService) Raise(ctx context.Context, q *domain.TaskQuery) error {
	if _, err := s.tasks.GetByID(ctx, q.TaskID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, q.UserID); err != nil {
		return err
	}
	now := s.now()
	if q.Status == "" {
		q.Status = domain.QueryOpen
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now
	return s.queries.Create(ctx, q)
}

func (s *queryService) GetByID(ctx context.Context, id int64) (*domain.TaskQuery, error) {
	return s.queries.GetByID(ctx, id)
}

func (s *queryService) ListByTask(ctx context.Context, taskID int64) ([]*domain.TaskQuery, error) {
	return s.queries.ListByTask(ctx, taskID)
}

func (s *queryService) ListByUser(ctx context.Context, userID int64) ([]*domain.TaskQuery, error) {
	return s.queries.ListByUser(ctx, userID)
}

func (s *queryService) Resolve(ctx context.Context, id int64) error {
	return s.queries.UpdateStatus(ctx, id, domain.QueryResolved, s.now())
}

func (s *queryService) Delete(ctx context.Context, id int64) error {
	return s.queries.Delete(ctx, id)
}
