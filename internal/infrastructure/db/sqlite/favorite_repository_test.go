package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

func TestFavoriteRepository_LikeIsIdempotent(t *testing.T) {
	db := testDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	recipeID := seedRecipe(t, db, userID, "Toast", false)

	if err := repo.Like(ctx, userID, recipeID); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	if err := repo.Like(ctx, userID, recipeID); err != nil {
		t.Fatalf("repeat like failed: %v", err)
	}

	liked, err := repo.ListLiked(ctx, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(liked) != 1 {
		t.Fatalf("expected 1 liked recipe, got %d", len(liked))
	}
}

func TestFavoriteRepository_Like_UnknownRecipe(t *testing.T) {
	db := testDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")

	if err := repo.Like(ctx, userID, 9999); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestFavoriteRepository_Unlike(t *testing.T) {
	db := testDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice", "alice@example.com")
	recipeID := seedRecipe(t, db, userID, "Toast", false)

	if err := repo.Like(ctx, userID, recipeID); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	removed, err := repo.Unlike(ctx, userID, recipeID)
	if err != nil || !removed {
		t.Fatalf("Unlike = (%v, %v), want (true, nil)", removed, err)
	}
	removed, err = repo.Unlike(ctx, userID, recipeID)
	if err != nil || removed {
		t.Fatalf("repeat Unlike = (%v, %v), want (false, nil)", removed, err)
	}
}
