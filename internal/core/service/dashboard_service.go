package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/recipeshare/recipe-api/internal/api/metrics"
	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// DashboardService backs the liked / recommended / category views. Listing
// reads go through the cache; a cache failure degrades to the database and
// is logged, never surfaced.
type DashboardService struct {
	favorites ports.FavoriteRepository
	recipes   ports.RecipeRepository
	cache     ports.ListingCache
	logger    zerolog.Logger
}

func NewDashboardService(favorites ports.FavoriteRepository, recipes ports.RecipeRepository, cache ports.ListingCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{favorites: favorites, recipes: recipes, cache: cache, logger: logger}
}

func (s *DashboardService) Liked(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	return s.favorites.ListLiked(ctx, userID)
}

// Like records the favorite. Private recipes of other users behave as if
// they do not exist.
func (s *DashboardService) Like(ctx context.Context, userID, recipeID int64) error {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.IsPrivate && recipe.UserID != userID {
		return domain.ErrRecipeNotFound
	}
	return s.favorites.Like(ctx, userID, recipeID)
}

func (s *DashboardService) Unlike(ctx context.Context, userID, recipeID int64) (bool, error) {
	return s.favorites.Unlike(ctx, userID, recipeID)
}

func (s *DashboardService) Recommended(ctx context.Context, limit int) ([]domain.Recipe, error) {
	key := fmt.Sprintf("dashboard:recommended:%d", limit)
	if recipes, ok := s.fromCache(ctx, key); ok {
		return recipes, nil
	}

	recipes, err := s.recipes.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, recipes)
	return recipes, nil
}

func (s *DashboardService) ByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Recipe, error) {
	if category == "" {
		return nil, domain.ErrInvalidInput
	}

	key := fmt.Sprintf("dashboard:category:%s:%d:%d", category, limit, offset)
	if recipes, ok := s.fromCache(ctx, key); ok {
		return recipes, nil
	}

	recipes, err := s.recipes.ListByCategory(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, recipes)
	return recipes, nil
}

func (s *DashboardService) fromCache(ctx context.Context, key string) ([]domain.Recipe, bool) {
	recipes, ok, err := s.cache.GetRecipes(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("listing cache read failed")
		return nil, false
	}
	if ok {
		metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
		return recipes, true
	}
	metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
	return nil, false
}

func (s *DashboardService) toCache(ctx context.Context, key string, recipes []domain.Recipe) {
	if err := s.cache.SetRecipes(ctx, key, recipes); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
	}
}
