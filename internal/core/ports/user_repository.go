package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with the generated ID.
	// A duplicate email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail matches case-insensitively and includes the password hash.
	// For authentication use only.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the public projection (no password hash).
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, newHash string) (bool, error)
	// UpgradeToChef sets role to professional_chef and marks the user paid in
	// a single statement; the two fields never change independently here.
	UpgradeToChef(ctx context.Context, id int64) (bool, error)
	// ListPaid returns paid users, newest first. Limit is clamped to 1-200.
	ListPaid(ctx context.Context, limit, offset int) ([]domain.User, error)
	// SearchByUsername matches on username prefix. Limit is clamped to 1-200.
	SearchByUsername(ctx context.Context, keyword string, limit, offset int) ([]domain.User, error)
}
