package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// AuthService implements signup, login and credential maintenance.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	// UpgradeToChef flips role to professional_chef and marks the account
	// paid. Called after a successful payment.
	UpgradeToChef(ctx context.Context, userID int64) error
}
