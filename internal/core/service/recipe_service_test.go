package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

type stubRecipeRepo struct {
	recipes map[int64]*domain.Recipe
	nextID  int64

	lastUpdateFields map[string]any
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[int64]*domain.Recipe), nextID: 1}
}

func (r *stubRecipeRepo) CreateWithIngredients(_ context.Context, recipe *domain.Recipe, lines []domain.RecipeIngredient) (int64, error) {
	copy := *recipe
	copy.ID = r.nextID
	r.nextID++
	r.recipes[copy.ID] = &copy
	return copy.ID, nil
}

func (r *stubRecipeRepo) ListPublic(_ context.Context, filter ports.ListRecipesFilter) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, rec := range r.recipes {
		if !rec.IsPrivate {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) ListByOwner(_ context.Context, ownerID int64, includePrivate bool, limit, offset int) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, rec := range r.recipes {
		if rec.UserID != ownerID {
			continue
		}
		if rec.IsPrivate && !includePrivate {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id int64) (*domain.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	copy := *rec
	return &copy, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, id int64, fields map[string]any) (ports.UpdateResult, error) {
	r.lastUpdateFields = fields
	if _, ok := r.recipes[id]; !ok {
		return ports.UpdateResult{Reason: ports.ReasonNotFound}, nil
	}
	if len(fields) == 0 {
		return ports.UpdateResult{Reason: ports.ReasonNoFields}, nil
	}
	return ports.UpdateResult{Updated: true}, nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.recipes[id]; !ok {
		return false, nil
	}
	delete(r.recipes, id)
	return true, nil
}

func (r *stubRecipeRepo) ListByDifficulty(_ context.Context, label string, limit, offset int) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, rec := range r.recipes {
		if !rec.IsPrivate && rec.Difficulty == label {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) ListByCategory(_ context.Context, category string, limit, offset int) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, rec := range r.recipes {
		if !rec.IsPrivate && rec.Category == category {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) ListRecent(_ context.Context, limit int) ([]domain.Recipe, error) {
	return r.ListPublic(context.Background(), ports.ListRecipesFilter{})
}

type stubLineRepo struct {
	lines map[[2]int64]domain.RecipeIngredient
}

func newStubLineRepo() *stubLineRepo {
	return &stubLineRepo{lines: make(map[[2]int64]domain.RecipeIngredient)}
}

func (r *stubLineRepo) Upsert(_ context.Context, line domain.RecipeIngredient) error {
	r.lines[[2]int64{line.RecipeID, line.IngredientID}] = line
	return nil
}

func (r *stubLineRepo) ListForRecipe(_ context.Context, recipeID int64) ([]domain.IngredientLine, error) {
	var out []domain.IngredientLine
	for key, line := range r.lines {
		if key[0] == recipeID {
			out = append(out, domain.IngredientLine{ID: line.IngredientID, Quantity: line.Quantity, Unit: line.Unit, Note: line.Note})
		}
	}
	return out, nil
}

func (r *stubLineRepo) Update(_ context.Context, line domain.RecipeIngredient) (bool, error) {
	key := [2]int64{line.RecipeID, line.IngredientID}
	if _, ok := r.lines[key]; !ok {
		return false, nil
	}
	r.lines[key] = line
	return true, nil
}

func (r *stubLineRepo) Delete(_ context.Context, recipeID, ingredientID int64) (bool, error) {
	key := [2]int64{recipeID, ingredientID}
	if _, ok := r.lines[key]; !ok {
		return false, nil
	}
	delete(r.lines, key)
	return true, nil
}

func (r *stubLineRepo) DeleteAllForRecipe(_ context.Context, recipeID int64) (int64, error) {
	var n int64
	for key := range r.lines {
		if key[0] == recipeID {
			delete(r.lines, key)
			n++
		}
	}
	return n, nil
}

func (r *stubLineRepo) ListRecipesForIngredient(_ context.Context, ingredientID int64) ([]domain.Recipe, error) {
	return nil, nil
}

func newRecipeService(recipes *stubRecipeRepo, lines *stubLineRepo) *RecipeService {
	return NewRecipeService(recipes, lines, zerolog.Nop())
}

func TestRecipeService_Create_DerivesDifficulty(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := newRecipeService(repo, newStubLineRepo())

	result, err := svc.Create(context.Background(), 1, ports.CreateRecipeInput{
		Name:         "Toast",
		CookTime:     10,
		BaseServings: 2,
		Ingredients: []ports.RecipeLineInput{
			{IngredientID: 1, Quantity: "1"},
			{IngredientID: 2, Quantity: "0.5"},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if result.Difficulty != domain.DifficultyEasy {
		t.Fatalf("expected Easy, got %s", result.Difficulty)
	}
	if repo.recipes[result.ID].Difficulty != domain.DifficultyEasy {
		t.Fatalf("difficulty not persisted")
	}
}

func TestRecipeService_Create_Validation(t *testing.T) {
	svc := newRecipeService(newStubRecipeRepo(), newStubLineRepo())

	cases := []ports.CreateRecipeInput{
		{Name: "", CookTime: 10, BaseServings: 2},
		{Name: "   ", CookTime: 10, BaseServings: 2},
		{Name: "Soup", CookTime: -1, BaseServings: 2},
		{Name: "Soup", CookTime: 10, BaseServings: 0},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), 1, input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestRecipeService_Get_PrivateVisibility(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.recipes[1] = &domain.Recipe{ID: 1, UserID: 7, Name: "Secret sauce", IsPrivate: true}
	svc := newRecipeService(repo, newStubLineRepo())

	if _, err := svc.Get(context.Background(), 7, 1); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Everyone else sees not-found, never forbidden.
	if _, err := svc.Get(context.Background(), 8, 1); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for stranger, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 0, 1); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for anonymous, got %v", err)
	}
}

func TestRecipeService_Update_Ownership(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.recipes[1] = &domain.Recipe{ID: 1, UserID: 7, Name: "Public pie"}
	repo.recipes[2] = &domain.Recipe{ID: 2, UserID: 7, Name: "Hidden pie", IsPrivate: true}
	svc := newRecipeService(repo, newStubLineRepo())

	if _, err := svc.Update(context.Background(), 8, 1, map[string]any{"name": "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on public recipe, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 8, 2, map[string]any{"name": "x"}); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound on private recipe, got %v", err)
	}

	result, err := svc.Update(context.Background(), 7, 1, map[string]any{"name": "Renamed"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if !result.Updated {
		t.Fatalf("expected update, got %+v", result)
	}
	if repo.lastUpdateFields["name"] != "Renamed" {
		t.Fatalf("fields not passed through: %+v", repo.lastUpdateFields)
	}
}

func TestRecipeService_Update_DifficultyLabel(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.recipes[1] = &domain.Recipe{ID: 1, UserID: 7, Name: "Pie"}
	svc := newRecipeService(repo, newStubLineRepo())

	if _, err := svc.Update(context.Background(), 7, 1, map[string]any{"difficulty": "impossible"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown label, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 7, 1, map[string]any{"difficulty": domain.DifficultyHard}); err != nil {
		t.Fatalf("valid label rejected: %v", err)
	}
}

func TestRecipeService_Delete(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.recipes[1] = &domain.Recipe{ID: 1, UserID: 7, Name: "Pie"}
	svc := newRecipeService(repo, newStubLineRepo())

	if err := svc.Delete(context.Background(), 8, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), 7, 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), 7, 1); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound after delete, got %v", err)
	}
}

func TestRecipeService_ListByDifficulty_RejectsUnknownLabel(t *testing.T) {
	svc := newRecipeService(newStubRecipeRepo(), newStubLineRepo())

	if _, err := svc.ListByDifficulty(context.Background(), "trivial", 10, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecipeService_SetIngredient_OwnershipAndUpsert(t *testing.T) {
	repo := newStubRecipeRepo()
	lines := newStubLineRepo()
	repo.recipes[1] = &domain.Recipe{ID: 1, UserID: 7, Name: "Pie"}
	svc := newRecipeService(repo, lines)

	if err := svc.SetIngredient(context.Background(), 8, 1, ports.RecipeLineInput{IngredientID: 3}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.SetIngredient(context.Background(), 7, 1, ports.RecipeLineInput{IngredientID: 3, Quantity: "2"}); err != nil {
		t.Fatalf("SetIngredient failed: %v", err)
	}
	if err := svc.SetIngredient(context.Background(), 7, 1, ports.RecipeLineInput{IngredientID: 3, Quantity: "5"}); err != nil {
		t.Fatalf("second SetIngredient failed: %v", err)
	}
	if len(lines.lines) != 1 {
		t.Fatalf("upsert must replace, not duplicate: %d rows", len(lines.lines))
	}
	if got := lines.lines[[2]int64{1, 3}].Quantity; got != "5" {
		t.Fatalf("expected quantity 5, got %s", got)
	}
}

func TestRecipeService_ClearIngredients(t *testing.T) {
	repo := newStubRecipeRepo()
	lines := newStubLineRepo()
	repo.recipes[1] = &domain.Recipe{ID: 1, UserID: 7, Name: "Pie"}
	lines.lines[[2]int64{1, 3}] = domain.RecipeIngredient{RecipeID: 1, IngredientID: 3}
	lines.lines[[2]int64{1, 4}] = domain.RecipeIngredient{RecipeID: 1, IngredientID: 4}
	svc := newRecipeService(repo, lines)

	count, err := svc.ClearIngredients(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("ClearIngredients failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 deleted, got %d", count)
	}
}
