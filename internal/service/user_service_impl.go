package service

import (
	"context"
	"time"

	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

// NewUserService creates the user CRUD service.
func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, u *domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return s.users.Create(ctx, u)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
