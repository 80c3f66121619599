package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// ListRecipesFilter carries pagination and ordering for recipe listings.
// Limit is clamped to 1-50 by the repository.
type ListRecipesFilter struct {
	Limit  int
	Offset int
	Order  string // one of domain.OrderNew (default), OrderOld, OrderTime
}

// RecipeRepository defines persistence operations for recipes and their
// ingredient lines.
type RecipeRepository interface {
	// CreateWithIngredients inserts the recipe and its association rows in a
	// single transaction: either everything is visible or nothing is.
	CreateWithIngredients(ctx context.Context, r *domain.Recipe, lines []domain.RecipeIngredient) (int64, error)
	// ListPublic returns public recipes with embedded ingredient lines.
	ListPublic(ctx context.Context, filter ListRecipesFilter) ([]domain.Recipe, error)
	// ListByOwner returns a user's recipes, newest first. When includePrivate
	// is false private rows are excluded even for the owner.
	ListByOwner(ctx context.Context, ownerID int64, includePrivate bool, limit, offset int) ([]domain.Recipe, error)
	// FindByID returns the recipe with embedded ingredient lines.
	FindByID(ctx context.Context, id int64) (*domain.Recipe, error)
	// Update applies a whitelisted partial update. Keys outside the whitelist
	// are silently ignored; an empty effective set yields reason no_fields.
	Update(ctx context.Context, id int64, fields map[string]any) (UpdateResult, error)
	// Delete removes the recipe and its association and favorite rows in one
	// transaction. Dangling associations are a correctness bug, not a state.
	Delete(ctx context.Context, id int64) (bool, error)
	ListByDifficulty(ctx context.Context, label string, limit, offset int) ([]domain.Recipe, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Recipe, error)
	// ListRecent returns the newest recipes for the dashboard recommendation
	// feed (public rows only).
	ListRecent(ctx context.Context, limit int) ([]domain.Recipe, error)
}
