package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// UserService defines read-side user operations beyond authentication.
type UserService interface {
	GetProfile(ctx context.Context, id int64) (*domain.User, error)
	ListPaid(ctx context.Context, limit, offset int) ([]domain.User, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]domain.User, error)
}
