package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// IngredientRepository implements ports.IngredientRepository on sqlite.
type IngredientRepository struct {
	db *sqlx.DB
}

func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// CreateOrGet inserts the normalized name, or returns the existing row's id
// when it is already present. ON CONFLICT DO NOTHING keeps the insert
// idempotent without a read-then-write race.
func (r *IngredientRepository) CreateOrGet(ctx context.Context, name string) (ports.CreateOrGetResult, error) {
	n := domain.NormalizeName(name)
	if n == "" {
		return ports.CreateOrGetResult{}, domain.ErrNameRequired
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ingredients (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, n)
	if err != nil {
		return ports.CreateOrGetResult{}, fmt.Errorf("insert ingredient: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return ports.CreateOrGetResult{}, err
	}
	if affected == 1 {
		id, err := res.LastInsertId()
		if err != nil {
			return ports.CreateOrGetResult{}, err
		}
		return ports.CreateOrGetResult{ID: id, Created: true}, nil
	}

	// Conflict path: fetch the id of the row that already holds the name.
	var id int64
	if err := r.db.GetContext(ctx, &id, `SELECT id FROM ingredients WHERE name = ?`, n); err != nil {
		return ports.CreateOrGetResult{}, fmt.Errorf("fetch existing ingredient: %w", err)
	}
	return ports.CreateOrGetResult{ID: id, Created: false}, nil
}

func (r *IngredientRepository) List(ctx context.Context, limit, offset int) ([]domain.Ingredient, error) {
	limit = clamp(limit, 1, 200)
	offset = nonNegative(offset)

	var rows []domain.Ingredient
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name FROM ingredients ORDER BY name ASC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return rows, nil
}

func (r *IngredientRepository) FindByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := r.db.GetContext(ctx, &ing, `SELECT id, name FROM ingredients WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("find ingredient: %w", err)
	}
	return &ing, nil
}

func (r *IngredientRepository) Update(ctx context.Context, id int64, name string) (ports.UpdateResult, error) {
	n := domain.NormalizeName(name)
	if n == "" {
		return ports.UpdateResult{}, domain.ErrNameRequired
	}

	current, err := r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return ports.UpdateResult{Updated: false, Reason: ports.ReasonNotFound}, nil
		}
		return ports.UpdateResult{}, err
	}
	if current.Name == n {
		return ports.UpdateResult{Updated: false, Reason: ports.ReasonNoChange}, nil
	}

	_, err = r.db.ExecContext(ctx, `UPDATE ingredients SET name = ? WHERE id = ?`, n, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.UpdateResult{Updated: false, Reason: ports.ReasonDuplicate}, nil
		}
		return ports.UpdateResult{}, fmt.Errorf("update ingredient: %w", err)
	}
	return ports.UpdateResult{Updated: true}, nil
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) (ports.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = ?`, id)
	if err != nil {
		// The FK from recipe_ingredients restricts deletion while in use.
		if isForeignKeyViolation(err) {
			return ports.DeleteResult{Deleted: false, Reason: ports.ReasonInUse}, nil
		}
		return ports.DeleteResult{}, fmt.Errorf("delete ingredient: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ports.DeleteResult{}, err
	}
	if n == 0 {
		return ports.DeleteResult{Deleted: false, Reason: ports.ReasonNotFound}, nil
	}
	return ports.DeleteResult{Deleted: true}, nil
}

func (r *IngredientRepository) SearchByName(ctx context.Context, keyword string, limit int) ([]domain.Ingredient, error) {
	q := domain.NormalizeName(keyword)
	limit = clamp(limit, 1, 50)

	var rows []domain.Ingredient
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name FROM ingredients WHERE name LIKE ? || '%' ORDER BY name ASC LIMIT ?`,
		q, limit)
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return rows, nil
}

func (r *IngredientRepository) ListForRecipe(ctx context.Context, recipeID int64) ([]domain.IngredientLine, error) {
	return selectIngredientLines(ctx, r.db, recipeID)
}

// selectIngredientLines is shared with the association repository: both
// expose the per-recipe ingredient view.
func selectIngredientLines(ctx context.Context, db *sqlx.DB, recipeID int64) ([]domain.IngredientLine, error) {
	var rows []struct {
		ID       int64          `db:"id"`
		Name     string         `db:"name"`
		Quantity sql.NullString `db:"quantity"`
		Unit     sql.NullString `db:"unit"`
		Note     sql.NullString `db:"note"`
	}
	err := db.SelectContext(ctx, &rows,
		`SELECT i.id, i.name,
		        ri.quantity_per_serving AS quantity,
		        ri.unit, ri.note
		   FROM recipe_ingredients ri
		   JOIN ingredients i ON ri.ingredient_id = i.id
		  WHERE ri.recipe_id = ?
		  ORDER BY i.name ASC`,
		recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}

	lines := make([]domain.IngredientLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.IngredientLine{
			ID:       row.ID,
			Name:     row.Name,
			Quantity: row.Quantity.String,
			Unit:     row.Unit.String,
			Note:     row.Note.String,
		})
	}
	return lines, nil
}
