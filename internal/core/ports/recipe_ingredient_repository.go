package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// RecipeIngredientRepository defines persistence operations for the
// (recipe, ingredient) join rows.
type RecipeIngredientRepository interface {
	// Upsert inserts the pair or replaces quantity/unit/note for an existing
	// one. Quantity is normalized to a trimmed string, stored NULL if empty.
	Upsert(ctx context.Context, line domain.RecipeIngredient) error
	// ListForRecipe returns the rows ordered by ingredient name.
	ListForRecipe(ctx context.Context, recipeID int64) ([]domain.IngredientLine, error)
	// Update rewrites quantity/unit/note for an existing pair.
	Update(ctx context.Context, line domain.RecipeIngredient) (bool, error)
	Delete(ctx context.Context, recipeID, ingredientID int64) (bool, error)
	// DeleteAllForRecipe removes every row for the recipe and returns the
	// number deleted.
	DeleteAllForRecipe(ctx context.Context, recipeID int64) (int64, error)
	// ListRecipesForIngredient is the reverse lookup: recipes using the
	// ingredient (public rows only).
	ListRecipesForIngredient(ctx context.Context, ingredientID int64) ([]domain.Recipe, error)
}
