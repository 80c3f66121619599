package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// RecipeLineInput is one ingredient entry supplied on recipe creation or
// when setting a single line.
type RecipeLineInput struct {
	IngredientID int64
	Quantity     string
	Unit         string
	Note         string
}

// CreateRecipeInput carries all data needed to create a recipe.
type CreateRecipeInput struct {
	Name         string
	Description  string
	CookTime     int
	BaseServings int
	IsPrivate    bool
	Category     string
	ImageURL     string
	Ingredients  []RecipeLineInput
}

// CreateRecipeResult is returned after a successful create.
type CreateRecipeResult struct {
	ID         int64
	Difficulty string
}

// RecipeService defines use-case operations for recipes. callerID is the
// authenticated user's id, or 0 for anonymous read paths.
type RecipeService interface {
	// Create inserts the recipe with its ingredient lines in one transaction.
	// Difficulty is derived from cook time and line count, never accepted
	// from the caller.
	Create(ctx context.Context, callerID int64, input CreateRecipeInput) (*CreateRecipeResult, error)
	// Get enforces privacy: a private recipe resolves only for its owner;
	// everyone else gets domain.ErrRecipeNotFound (existence stays hidden).
	Get(ctx context.Context, callerID, recipeID int64) (*domain.Recipe, error)
	ListPublic(ctx context.Context, filter ListRecipesFilter) ([]domain.Recipe, error)
	// ListMine returns the caller's recipes including private ones.
	ListMine(ctx context.Context, callerID int64, limit, offset int) ([]domain.Recipe, error)
	// ListByUser is the public profile view: private rows excluded even when
	// the caller is the owner.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Recipe, error)
	// Update applies a whitelisted partial update after an ownership check.
	Update(ctx context.Context, callerID, recipeID int64, fields map[string]any) (UpdateResult, error)
	// Delete removes the recipe and its dependent rows after an ownership
	// check.
	Delete(ctx context.Context, callerID, recipeID int64) error
	ListByDifficulty(ctx context.Context, label string, limit, offset int) ([]domain.Recipe, error)
	// SetIngredient upserts one ingredient line after an ownership check.
	SetIngredient(ctx context.Context, callerID, recipeID int64, line RecipeLineInput) error
	// RemoveIngredient deletes one ingredient line after an ownership check.
	RemoveIngredient(ctx context.Context, callerID, recipeID, ingredientID int64) (bool, error)
	// ClearIngredients deletes every line after an ownership check and
	// returns the number removed.
	ClearIngredients(ctx context.Context, callerID, recipeID int64) (int64, error)
}
