package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

func TestIngredientRepository_CreateOrGet_Idempotent(t *testing.T) {
	db := testDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	first, err := repo.CreateOrGet(ctx, "Salt")
	if err != nil {
		t.Fatalf("first CreateOrGet failed: %v", err)
	}
	if !first.Created {
		t.Fatalf("expected created=true on first insert")
	}

	// Same name with messy whitespace resolves to the same row.
	second, err := repo.CreateOrGet(ctx, "  Salt  ")
	if err != nil {
		t.Fatalf("second CreateOrGet failed: %v", err)
	}
	if second.Created {
		t.Fatalf("expected created=false on repeat insert")
	}
	if second.ID != first.ID {
		t.Fatalf("expected same id, got %d and %d", first.ID, second.ID)
	}
}

func TestIngredientRepository_CreateOrGet_EmptyName(t *testing.T) {
	repo := NewIngredientRepository(testDB(t))

	if _, err := repo.CreateOrGet(context.Background(), "   "); !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestIngredientRepository_Update_Reasons(t *testing.T) {
	db := testDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	saltID := seedIngredient(t, db, "Salt")
	seedIngredient(t, db, "Pepper")

	result, err := repo.Update(ctx, saltID, "Sea salt")
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if !result.Updated {
		t.Fatalf("expected update, got %+v", result)
	}

	result, err = repo.Update(ctx, saltID, " Sea   salt ")
	if err != nil {
		t.Fatalf("no-change update failed: %v", err)
	}
	if result.Updated || result.Reason != ports.ReasonNoChange {
		t.Fatalf("expected no_change, got %+v", result)
	}

	result, err = repo.Update(ctx, saltID, "Pepper")
	if err != nil {
		t.Fatalf("duplicate update failed: %v", err)
	}
	if result.Updated || result.Reason != ports.ReasonDuplicate {
		t.Fatalf("expected duplicate, got %+v", result)
	}

	result, err = repo.Update(ctx, 9999, "Cumin")
	if err != nil {
		t.Fatalf("missing-row update failed: %v", err)
	}
	if result.Updated || result.Reason != ports.ReasonNotFound {
		t.Fatalf("expected not_found, got %+v", result)
	}
}

func TestIngredientRepository_Delete_InUseGuard(t *testing.T) {
	db := testDB(t)
	repo := NewIngredientRepository(db)
	lines := NewRecipeIngredientRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	saltID := seedIngredient(t, db, "Salt")
	recipeID := seedRecipe(t, db, userID, "Toast", false)

	if err := lines.Upsert(ctx, domain.RecipeIngredient{RecipeID: recipeID, IngredientID: saltID, Quantity: "1"}); err != nil {
		t.Fatalf("attach line failed: %v", err)
	}

	result, err := repo.Delete(ctx, saltID)
	if err != nil {
		t.Fatalf("delete in-use failed: %v", err)
	}
	if result.Deleted || result.Reason != ports.ReasonInUse {
		t.Fatalf("expected in_use, got %+v", result)
	}

	if _, err := lines.Delete(ctx, recipeID, saltID); err != nil {
		t.Fatalf("detach line failed: %v", err)
	}

	result, err = repo.Delete(ctx, saltID)
	if err != nil {
		t.Fatalf("delete after detach failed: %v", err)
	}
	if !result.Deleted {
		t.Fatalf("expected deletion, got %+v", result)
	}

	result, err = repo.Delete(ctx, saltID)
	if err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	if result.Deleted || result.Reason != ports.ReasonNotFound {
		t.Fatalf("expected not_found, got %+v", result)
	}
}

func TestIngredientRepository_SearchByName(t *testing.T) {
	db := testDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	seedIngredient(t, db, "Salt")
	seedIngredient(t, db, "Salmon")
	seedIngredient(t, db, "Pepper")

	rows, err := repo.SearchByName(ctx, "Sal", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(rows))
	}
	if rows[0].Name != "Salmon" || rows[1].Name != "Salt" {
		t.Fatalf("expected name order, got %+v", rows)
	}
}

func TestIngredientRepository_ListForRecipe(t *testing.T) {
	db := testDB(t)
	repo := NewIngredientRepository(db)
	lines := NewRecipeIngredientRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	recipeID := seedRecipe(t, db, userID, "Toast", false)
	saltID := seedIngredient(t, db, "Salt")
	butterID := seedIngredient(t, db, "Butter")

	if err := lines.Upsert(ctx, domain.RecipeIngredient{RecipeID: recipeID, IngredientID: saltID, Quantity: "0.5", Unit: "tsp"}); err != nil {
		t.Fatalf("attach salt failed: %v", err)
	}
	if err := lines.Upsert(ctx, domain.RecipeIngredient{RecipeID: recipeID, IngredientID: butterID, Quantity: "10", Unit: "g"}); err != nil {
		t.Fatalf("attach butter failed: %v", err)
	}

	got, err := repo.ListForRecipe(ctx, recipeID)
	if err != nil {
		t.Fatalf("ListForRecipe failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[0].Name != "Butter" || got[0].Quantity != "10" || got[0].Unit != "g" {
		t.Fatalf("unexpected first line: %+v", got[0])
	}
	if got[1].Name != "Salt" || got[1].Quantity != "0.5" {
		t.Fatalf("unexpected second line: %+v", got[1])
	}
}
