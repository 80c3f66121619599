package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// IngredientService defines use-case operations for the ingredient catalog.
type IngredientService interface {
	CreateOrGet(ctx context.Context, name string) (CreateOrGetResult, error)
	List(ctx context.Context, limit, offset int) ([]domain.Ingredient, error)
	Get(ctx context.Context, id int64) (*domain.Ingredient, error)
	Update(ctx context.Context, id int64, name string) (UpdateResult, error)
	Delete(ctx context.Context, id int64) (DeleteResult, error)
	Search(ctx context.Context, keyword string, limit int) ([]domain.Ingredient, error)
	// RecipesUsing returns public recipes that reference the ingredient.
	RecipesUsing(ctx context.Context, ingredientID int64) ([]domain.Recipe, error)
}
