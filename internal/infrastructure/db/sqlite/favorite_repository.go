package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// FavoriteRepository implements ports.FavoriteRepository on sqlite.
type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Like records the favorite. Re-liking is a no-op thanks to the composite
// primary key.
func (r *FavoriteRepository) Like(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, recipe_id) VALUES (?, ?)
		 ON CONFLICT(user_id, recipe_id) DO NOTHING`,
		userID, recipeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecipeNotFound
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Unlike(ctx context.Context, userID, recipeID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`,
		userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FavoriteRepository) ListLiked(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT r.id, r.user_id, r.name, r.description, r.cook_time, r.base_servings,
		        r.is_private, r.difficulty, r.category, r.image_url, r.created_at, r.updated_at
		   FROM favorites f
		   JOIN recipes r ON f.recipe_id = r.id
		  WHERE f.user_id = ?
		  ORDER BY f.created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list liked recipes: %w", err)
	}
	return toDomainRecipes(rows), nil
}
