package ports

import (
	"context"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// Machine-readable reasons for expected business-rule outcomes. Handlers
// branch on these instead of matching error strings.
const (
	ReasonNotFound  = "not_found"
	ReasonNoChange  = "no_change"
	ReasonDuplicate = "duplicate"
	ReasonInUse     = "in_use"
	ReasonNoFields  = "no_fields"
)

// CreateOrGetResult reports the outcome of an idempotent ingredient create.
// Created is false when the normalized name already existed.
type CreateOrGetResult struct {
	ID      int64
	Created bool
}

// UpdateResult carries the outcome of a conditional update. Reason is empty
// on success and one of the Reason constants otherwise.
type UpdateResult struct {
	Updated bool
	Reason  string
}

// DeleteResult carries the outcome of a guarded delete.
type DeleteResult struct {
	Deleted bool
	Reason  string
}

// IngredientRepository defines persistence operations for the ingredient
// catalog. Names are whitespace-normalized before storage and comparison.
type IngredientRepository interface {
	// CreateOrGet inserts the normalized name or returns the existing row's
	// id. Empty normalized names surface as domain.ErrNameRequired.
	CreateOrGet(ctx context.Context, name string) (CreateOrGetResult, error)
	// List returns ingredients ordered by name. Limit is clamped to 1-200.
	List(ctx context.Context, limit, offset int) ([]domain.Ingredient, error)
	FindByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	// Update renames an ingredient. Reasons: not_found, no_change, duplicate.
	Update(ctx context.Context, id int64, name string) (UpdateResult, error)
	// Delete removes an unreferenced ingredient. Reasons: not_found, in_use.
	Delete(ctx context.Context, id int64) (DeleteResult, error)
	// SearchByName matches on name prefix. Limit is clamped to 1-50.
	SearchByName(ctx context.Context, keyword string, limit int) ([]domain.Ingredient, error)
	// ListForRecipe returns the recipe's ingredients joined through the
	// association, each annotated with quantity, unit and note.
	ListForRecipe(ctx context.Context, recipeID int64) ([]domain.IngredientLine, error)
}
