package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// FavoriteRepository defines persistence operations for liked recipes.
type FavoriteRepository interface {
	// Like records the favorite; liking an already-liked recipe is a no-op.
	Like(ctx context.Context, userID, recipeID int64) error
	Unlike(ctx context.Context, userID, recipeID int64) (bool, error)
	// ListLiked returns the user's liked recipes, most recently liked first.
	ListLiked(ctx context.Context, userID int64) ([]domain.Recipe, error)
}
