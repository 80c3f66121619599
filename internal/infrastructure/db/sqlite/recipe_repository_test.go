package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

func TestRecipeRepository_CreateWithIngredients(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	saltID := seedIngredient(t, db, "Salt")

	id, err := repo.CreateWithIngredients(ctx, &domain.Recipe{
		UserID:       userID,
		Name:         "Toast",
		CookTime:     5,
		BaseServings: 1,
		Difficulty:   domain.DifficultyEasy,
	}, []domain.RecipeIngredient{
		{IngredientID: saltID, Quantity: "0.5", Unit: "tsp"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	recipe, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if recipe.Name != "Toast" || recipe.Difficulty != domain.DifficultyEasy {
		t.Fatalf("unexpected recipe: %+v", recipe)
	}
	if len(recipe.Ingredients) != 1 || recipe.Ingredients[0].Name != "Salt" {
		t.Fatalf("expected embedded salt line, got %+v", recipe.Ingredients)
	}
}

func TestRecipeRepository_CreateWithIngredients_UnknownIngredientRollsBack(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")

	_, err := repo.CreateWithIngredients(ctx, &domain.Recipe{
		UserID:       userID,
		Name:         "Ghost stew",
		CookTime:     5,
		BaseServings: 1,
	}, []domain.RecipeIngredient{
		{IngredientID: 9999, Quantity: "1"},
	})
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}

	// The recipe insert must have rolled back with the failing line.
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM recipes`); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 recipes after rollback, got %d", count)
	}
}

func TestRecipeRepository_ListPublic_ExcludesPrivate(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	seedRecipe(t, db, userID, "Public pie", false)
	seedRecipe(t, db, userID, "Secret pie", true)

	recipes, err := repo.ListPublic(ctx, ports.ListRecipesFilter{Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Public pie" {
		t.Fatalf("expected only the public recipe, got %+v", recipes)
	}
}

func TestRecipeRepository_ListPublic_OrderByCookTime(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	if _, err := repo.CreateWithIngredients(ctx, &domain.Recipe{UserID: userID, Name: "Slow roast", CookTime: 90, BaseServings: 2}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.CreateWithIngredients(ctx, &domain.Recipe{UserID: userID, Name: "Quick toast", CookTime: 5, BaseServings: 2}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	recipes, err := repo.ListPublic(ctx, ports.ListRecipesFilter{Limit: 10, Order: domain.OrderTime})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recipes) != 2 || recipes[0].Name != "Quick toast" {
		t.Fatalf("expected cook_time ascending, got %+v", recipes)
	}
}

func TestRecipeRepository_ListByOwner_PrivateVisibility(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	seedRecipe(t, db, userID, "Public pie", false)
	seedRecipe(t, db, userID, "Secret pie", true)

	mine, err := repo.ListByOwner(ctx, userID, true, 10, 0)
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected both recipes for owner view, got %d", len(mine))
	}

	profile, err := repo.ListByOwner(ctx, userID, false, 10, 0)
	if err != nil {
		t.Fatalf("profile list failed: %v", err)
	}
	if len(profile) != 1 || profile[0].Name != "Public pie" {
		t.Fatalf("expected public view to hide private rows, got %+v", profile)
	}
}

func TestRecipeRepository_Update_Whitelist(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	id := seedRecipe(t, db, userID, "Toast", false)

	// Unknown keys are ignored; whitelisted ones take effect.
	result, err := repo.Update(ctx, id, map[string]any{
		"name":         "French toast",
		"cook_time":    15,
		"user_id":      999,
		"hacker_field": "x",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !result.Updated {
		t.Fatalf("expected update, got %+v", result)
	}

	recipe, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if recipe.Name != "French toast" || recipe.CookTime != 15 {
		t.Fatalf("whitelisted fields not applied: %+v", recipe)
	}
	if recipe.UserID != userID {
		t.Fatalf("ownership must not be reassignable, got user_id=%d", recipe.UserID)
	}

	// A payload with nothing whitelisted reports no_fields.
	result, err = repo.Update(ctx, id, map[string]any{"user_id": 999})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Updated || result.Reason != ports.ReasonNoFields {
		t.Fatalf("expected no_fields, got %+v", result)
	}

	result, err = repo.Update(ctx, 9999, map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Updated || result.Reason != ports.ReasonNotFound {
		t.Fatalf("expected not_found, got %+v", result)
	}
}

func TestRecipeRepository_Delete_RemovesDependents(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	lines := NewRecipeIngredientRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	saltID := seedIngredient(t, db, "Salt")
	id := seedRecipe(t, db, userID, "Toast", false)

	if err := lines.Upsert(ctx, domain.RecipeIngredient{RecipeID: id, IngredientID: saltID}); err != nil {
		t.Fatalf("attach line failed: %v", err)
	}
	if err := favorites.Like(ctx, userID, id); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Fatalf("expected deletion")
	}

	var lineCount, favCount int
	if err := db.Get(&lineCount, `SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_id = ?`, id); err != nil {
		t.Fatalf("count lines failed: %v", err)
	}
	if err := db.Get(&favCount, `SELECT COUNT(*) FROM favorites WHERE recipe_id = ?`, id); err != nil {
		t.Fatalf("count favorites failed: %v", err)
	}
	if lineCount != 0 || favCount != 0 {
		t.Fatalf("dependent rows survived: lines=%d favorites=%d", lineCount, favCount)
	}
}

func TestRecipeRepository_ListByDifficulty(t *testing.T) {
	db := testDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	if _, err := repo.CreateWithIngredients(ctx, &domain.Recipe{UserID: userID, Name: "Stew", CookTime: 60, BaseServings: 4, Difficulty: domain.DifficultyHard}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seedRecipe(t, db, userID, "Toast", false) // Easy

	hard, err := repo.ListByDifficulty(ctx, domain.DifficultyHard, 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(hard) != 1 || hard[0].Name != "Stew" {
		t.Fatalf("expected only the hard recipe, got %+v", hard)
	}
}
