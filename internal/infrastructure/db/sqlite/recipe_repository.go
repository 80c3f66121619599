package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// updatableRecipeFields is the whitelist for partial updates, in the order
// the SET clause is built. Keys outside this list are silently ignored.
var updatableRecipeFields = []string{
	"name", "description", "cook_time", "base_servings",
	"is_private", "difficulty", "category", "image_url",
}

const recipeColumns = `id, user_id, name, description, cook_time, base_servings,
	is_private, difficulty, category, image_url, created_at, updated_at`

// RecipeRepository implements ports.RecipeRepository on sqlite.
type RecipeRepository struct {
	db *sqlx.DB
}

func NewRecipeRepository(db *sqlx.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

type dbRecipe struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"user_id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	CookTime     int            `db:"cook_time"`
	BaseServings int            `db:"base_servings"`
	IsPrivate    bool           `db:"is_private"`
	Difficulty   sql.NullString `db:"difficulty"`
	Category     sql.NullString `db:"category"`
	ImageURL     sql.NullString `db:"image_url"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r dbRecipe) toDomain() domain.Recipe {
	return domain.Recipe{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Description:  r.Description.String,
		CookTime:     r.CookTime,
		BaseServings: r.BaseServings,
		IsPrivate:    r.IsPrivate,
		Difficulty:   r.Difficulty.String,
		Category:     r.Category.String,
		ImageURL:     r.ImageURL.String,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// CreateWithIngredients inserts the recipe and all its association rows in a
// single transaction. A failing line rolls back the recipe insert too, so a
// recipe never becomes visible with a partial ingredient set.
func (r *RecipeRepository) CreateWithIngredients(ctx context.Context, recipe *domain.Recipe, lines []domain.RecipeIngredient) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO recipes (user_id, name, description, cook_time, base_servings,
		                      is_private, difficulty, category, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.UserID, recipe.Name, nullString(recipe.Description),
		recipe.CookTime, recipe.BaseServings, recipe.IsPrivate,
		nullString(recipe.Difficulty), nullString(recipe.Category),
		nullString(recipe.ImageURL))
	if err != nil {
		return 0, fmt.Errorf("insert recipe: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert recipe id: %w", err)
	}

	for _, line := range lines {
		qty := strings.TrimSpace(line.Quantity)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity_per_serving, unit, note)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(recipe_id, ingredient_id) DO UPDATE SET
			   quantity_per_serving = excluded.quantity_per_serving,
			   unit = excluded.unit,
			   note = excluded.note`,
			id, line.IngredientID, nullString(qty), nullString(line.Unit), nullString(line.Note))
		if err != nil {
			if isForeignKeyViolation(err) {
				return 0, domain.ErrIngredientNotFound
			}
			return 0, fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit recipe: %w", err)
	}
	return id, nil
}

func (r *RecipeRepository) ListPublic(ctx context.Context, filter ports.ListRecipesFilter) ([]domain.Recipe, error) {
	limit := clamp(filter.Limit, 1, 50)
	offset := nonNegative(filter.Offset)

	orderBy := "ORDER BY created_at DESC"
	switch filter.Order {
	case domain.OrderOld:
		orderBy = "ORDER BY created_at ASC"
	case domain.OrderTime:
		orderBy = "ORDER BY cook_time ASC"
	}

	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+recipeColumns+` FROM recipes WHERE is_private = 0 `+orderBy+` LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list public recipes: %w", err)
	}
	return r.withIngredients(ctx, rows)
}

func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID int64, includePrivate bool, limit, offset int) ([]domain.Recipe, error) {
	limit = clamp(limit, 1, 50)
	offset = nonNegative(offset)

	visClause := ""
	if !includePrivate {
		visClause = "AND is_private = 0"
	}

	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+recipeColumns+` FROM recipes WHERE user_id = ? `+visClause+`
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes by owner: %w", err)
	}
	return r.withIngredients(ctx, rows)
}

func (r *RecipeRepository) FindByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var row dbRecipe
	err := r.db.GetContext(ctx, &row,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}

	recipes, err := r.withIngredients(ctx, []dbRecipe{row})
	if err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

// Update builds the SET clause from the whitelisted subset of fields. An
// update that touches nothing whitelisted reports reason no_fields.
func (r *RecipeRepository) Update(ctx context.Context, id int64, fields map[string]any) (ports.UpdateResult, error) {
	var sets []string
	var values []any
	for _, key := range updatableRecipeFields {
		if v, ok := fields[key]; ok {
			sets = append(sets, key+" = ?")
			values = append(values, v)
		}
	}
	if len(sets) == 0 {
		return ports.UpdateResult{Updated: false, Reason: ports.ReasonNoFields}, nil
	}

	values = append(values, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE recipes SET `+strings.Join(sets, ", ")+`, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		values...)
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ports.UpdateResult{}, err
	}
	if n == 0 {
		return ports.UpdateResult{Updated: false, Reason: ports.ReasonNotFound}, nil
	}
	return ports.UpdateResult{Updated: true}, nil
}

// Delete removes the recipe together with its association and favorite rows
// so no dangling children survive the parent.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE recipe_id = ?`, id); err != nil {
		return false, fmt.Errorf("delete recipe favorites: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = ?`, id); err != nil {
		return false, fmt.Errorf("delete recipe ingredients: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete: %w", err)
	}
	return n > 0, nil
}

func (r *RecipeRepository) ListByDifficulty(ctx context.Context, label string, limit, offset int) ([]domain.Recipe, error) {
	limit = clamp(limit, 1, 50)
	offset = nonNegative(offset)

	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+recipeColumns+` FROM recipes
		  WHERE difficulty = ? AND is_private = 0
		  ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		label, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes by difficulty: %w", err)
	}
	return toDomainRecipes(rows), nil
}

func (r *RecipeRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Recipe, error) {
	limit = clamp(limit, 1, 50)
	offset = nonNegative(offset)

	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+recipeColumns+` FROM recipes
		  WHERE category = ? AND is_private = 0
		  ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes by category: %w", err)
	}
	return toDomainRecipes(rows), nil
}

func (r *RecipeRepository) ListRecent(ctx context.Context, limit int) ([]domain.Recipe, error) {
	limit = clamp(limit, 1, 50)

	var rows []dbRecipe
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+recipeColumns+` FROM recipes
		  WHERE is_private = 0
		  ORDER BY created_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list recent recipes: %w", err)
	}
	return toDomainRecipes(rows), nil
}

// withIngredients loads the ingredient lines for a page of recipes with one
// IN query and attaches them, replacing the JSON aggregation a server-side
// document store would do.
func (r *RecipeRepository) withIngredients(ctx context.Context, rows []dbRecipe) ([]domain.Recipe, error) {
	recipes := toDomainRecipes(rows)
	if len(recipes) == 0 {
		return recipes, nil
	}

	ids := make([]int64, 0, len(recipes))
	for _, rec := range recipes {
		ids = append(ids, rec.ID)
	}

	query, args, err := sqlx.In(
		`SELECT ri.recipe_id, i.id, i.name,
		        ri.quantity_per_serving AS quantity,
		        ri.unit, ri.note
		   FROM recipe_ingredients ri
		   JOIN ingredients i ON ri.ingredient_id = i.id
		  WHERE ri.recipe_id IN (?)
		  ORDER BY i.name ASC`, ids)
	if err != nil {
		return nil, fmt.Errorf("build ingredient query: %w", err)
	}

	var lines []struct {
		RecipeID int64          `db:"recipe_id"`
		ID       int64          `db:"id"`
		Name     string         `db:"name"`
		Quantity sql.NullString `db:"quantity"`
		Unit     sql.NullString `db:"unit"`
		Note     sql.NullString `db:"note"`
	}
	if err := r.db.SelectContext(ctx, &lines, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load recipe ingredients: %w", err)
	}

	byRecipe := make(map[int64][]domain.IngredientLine, len(recipes))
	for _, line := range lines {
		byRecipe[line.RecipeID] = append(byRecipe[line.RecipeID], domain.IngredientLine{
			ID:       line.ID,
			Name:     line.Name,
			Quantity: line.Quantity.String,
			Unit:     line.Unit.String,
			Note:     line.Note.String,
		})
	}
	for i := range recipes {
		recipes[i].Ingredients = byRecipe[recipes[i].ID]
	}
	return recipes, nil
}

func toDomainRecipes(rows []dbRecipe) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, row.toDomain())
	}
	return recipes
}
