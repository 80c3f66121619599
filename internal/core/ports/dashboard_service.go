package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// ListingCache caches recipe listings under opaque keys. A miss is
// (nil, false, nil); infrastructure failures surface as errors so callers
// can fall through to the database.
type ListingCache interface {
	GetRecipes(ctx context.Context, key string) ([]domain.Recipe, bool, error)
	SetRecipes(ctx context.Context, key string, recipes []domain.Recipe) error
}

// DashboardService backs the liked / recommended / category views.
type DashboardService interface {
	Liked(ctx context.Context, userID int64) ([]domain.Recipe, error)
	Like(ctx context.Context, userID, recipeID int64) error
	Unlike(ctx context.Context, userID, recipeID int64) (bool, error)
	// Recommended returns the newest public recipes, served from cache when
	// warm.
	Recommended(ctx context.Context, limit int) ([]domain.Recipe, error)
	ByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Recipe, error)
}
