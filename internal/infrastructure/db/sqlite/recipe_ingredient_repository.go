package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// RecipeIngredientRepository implements ports.RecipeIngredientRepository on
// sqlite.
type RecipeIngredientRepository struct {
	db *sqlx.DB
}

func NewRecipeIngredientRepository(db *sqlx.DB) *RecipeIngredientRepository {
	return &RecipeIngredientRepository{db: db}
}

// Upsert inserts the (recipe, ingredient) pair or replaces quantity, unit
// and note for an existing one. The composite key guarantees at most one
// row per pair.
func (r *RecipeIngredientRepository) Upsert(ctx context.Context, line domain.RecipeIngredient) error {
	qty := strings.TrimSpace(line.Quantity)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity_per_serving, unit, note)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(recipe_id, ingredient_id) DO UPDATE SET
		   quantity_per_serving = excluded.quantity_per_serving,
		   unit = excluded.unit,
		   note = excluded.note`,
		line.RecipeID, line.IngredientID, nullString(qty), nullString(line.Unit), nullString(line.Note))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIngredientNotFound
		}
		return fmt.Errorf("upsert recipe ingredient: %w", err)
	}
	return nil
}

func (r *RecipeIngredientRepository) ListForRecipe(ctx context.Context, recipeID int64) ([]domain.IngredientLine, error) {
	return selectIngredientLines(ctx, r.db, recipeID)
}

func (r *RecipeIngredientRepository) Update(ctx context.Context, line domain.RecipeIngredient) (bool, error) {
	qty := strings.TrimSpace(line.Quantity)
	res, err := r.db.ExecContext(ctx,
		`UPDATE recipe_ingredients
		    SET quantity_per_serving = ?, unit = ?, note = ?
		  WHERE recipe_id = ? AND ingredient_id = ?`,
		nullString(qty), nullString(line.Unit), nullString(line.Note),
		line.RecipeID, line.IngredientID)
	if err != nil {
		return false, fmt.Errorf("update recipe ingredient: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RecipeIngredientRepository) Delete(ctx context.Context, recipeID, ingredientID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE recipe_id = ? AND ingredient_id = ?`,
		recipeID, ingredientID)
	if err != nil {
		return false, fmt.Errorf("delete recipe ingredient: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RecipeIngredientRepository) DeleteAllForRecipe(ctx context.Context, recipeID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID)
	if err != nil {
		return 0, fmt.Errorf("delete recipe ingredients: %w", err)
	}
	return res.RowsAffected()
}

func (r *RecipeIngredientRepository) ListRecipesForIngredient(ctx context.Context, ingredientID int64) ([]domain.Recipe, error) {
	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT r.id, r.user_id, r.name, r.description, r.cook_time, r.base_servings,
		        r.is_private, r.difficulty, r.category, r.image_url, r.created_at, r.updated_at
		   FROM recipe_ingredients ri
		   JOIN recipes r ON ri.recipe_id = r.id
		  WHERE ri.ingredient_id = ? AND r.is_private = 0
		  ORDER BY r.created_at DESC`,
		ingredientID)
	if err != nil {
		return nil, fmt.Errorf("list recipes for ingredient: %w", err)
	}
	return toDomainRecipes(rows), nil
}
