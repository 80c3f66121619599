package service

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// UserService implements read-side user operations.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) ListPaid(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.ListPaid(ctx, limit, offset)
}

func (s *UserService) Search(ctx context.Context, keyword string, limit, offset int) ([]domain.User, error) {
	return s.users.SearchByUsername(ctx, keyword, limit, offset)
}
