package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/recipeshare/recipe-api/internal/api/metrics"
	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// RecipeService implements recipe use cases with ownership and privacy
// enforcement on top of the repositories.
type RecipeService struct {
	recipes ports.RecipeRepository
	lines   ports.RecipeIngredientRepository
	logger  zerolog.Logger
}

func NewRecipeService(recipes ports.RecipeRepository, lines ports.RecipeIngredientRepository, logger zerolog.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, lines: lines, logger: logger}
}

// Create inserts the recipe with its ingredient lines in one transaction.
// Difficulty is derived from cook time and line count, never taken from the
// caller.
func (s *RecipeService) Create(ctx context.Context, callerID int64, input ports.CreateRecipeInput) (*ports.CreateRecipeResult, error) {
	if strings.TrimSpace(input.Name) == "" || input.CookTime < 0 || input.BaseServings <= 0 {
		return nil, domain.ErrInvalidInput
	}

	difficulty := domain.DifficultyFor(input.CookTime, len(input.Ingredients))

	recipe := &domain.Recipe{
		UserID:       callerID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		CookTime:     input.CookTime,
		BaseServings: input.BaseServings,
		IsPrivate:    input.IsPrivate,
		Difficulty:   difficulty,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
	}

	lines := make([]domain.RecipeIngredient, 0, len(input.Ingredients))
	for _, line := range input.Ingredients {
		lines = append(lines, domain.RecipeIngredient{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			Note:         line.Note,
		})
	}

	id, err := s.recipes.CreateWithIngredients(ctx, recipe, lines)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", callerID).Msg("failed to create recipe")
		return nil, err
	}

	metrics.RecipesCreatedTotal.WithLabelValues(difficulty).Inc()
	s.logger.Info().
		Int64("recipe_id", id).
		Int64("user_id", callerID).
		Str("difficulty", difficulty).
		Msg("recipe created")

	return &ports.CreateRecipeResult{ID: id, Difficulty: difficulty}, nil
}

// Get enforces privacy: a private recipe resolves only for its owner.
// Everyone else gets not-found so the row's existence stays hidden.
func (s *RecipeService) Get(ctx context.Context, callerID, recipeID int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.IsPrivate && recipe.UserID != callerID {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *RecipeService) ListPublic(ctx context.Context, filter ports.ListRecipesFilter) ([]domain.Recipe, error) {
	return s.recipes.ListPublic(ctx, filter)
}

func (s *RecipeService) ListMine(ctx context.Context, callerID int64, limit, offset int) ([]domain.Recipe, error) {
	return s.recipes.ListByOwner(ctx, callerID, true, limit, offset)
}

func (s *RecipeService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Recipe, error) {
	return s.recipes.ListByOwner(ctx, userID, false, limit, offset)
}

func (s *RecipeService) Update(ctx context.Context, callerID, recipeID int64, fields map[string]any) (ports.UpdateResult, error) {
	if _, err := s.ownedRecipe(ctx, callerID, recipeID); err != nil {
		return ports.UpdateResult{}, err
	}
	if v, ok := fields["difficulty"]; ok {
		label, _ := v.(string)
		if !domain.ValidDifficulty(label) {
			return ports.UpdateResult{}, domain.ErrInvalidInput
		}
	}
	return s.recipes.Update(ctx, recipeID, fields)
}

func (s *RecipeService) Delete(ctx context.Context, callerID, recipeID int64) error {
	if _, err := s.ownedRecipe(ctx, callerID, recipeID); err != nil {
		return err
	}

	deleted, err := s.recipes.Delete(ctx, recipeID)
	if err != nil {
		s.logger.Error().Err(err).Int64("recipe_id", recipeID).Msg("failed to delete recipe")
		return err
	}
	if !deleted {
		return domain.ErrRecipeNotFound
	}

	s.logger.Info().Int64("recipe_id", recipeID).Int64("user_id", callerID).Msg("recipe deleted")
	return nil
}

func (s *RecipeService) ListByDifficulty(ctx context.Context, label string, limit, offset int) ([]domain.Recipe, error) {
	if !domain.ValidDifficulty(label) {
		return nil, domain.ErrInvalidInput
	}
	return s.recipes.ListByDifficulty(ctx, label, limit, offset)
}

func (s *RecipeService) SetIngredient(ctx context.Context, callerID, recipeID int64, line ports.RecipeLineInput) error {
	if _, err := s.ownedRecipe(ctx, callerID, recipeID); err != nil {
		return err
	}
	return s.lines.Upsert(ctx, domain.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: line.IngredientID,
		Quantity:     line.Quantity,
		Unit:         line.Unit,
		Note:         line.Note,
	})
}

func (s *RecipeService) RemoveIngredient(ctx context.Context, callerID, recipeID, ingredientID int64) (bool, error) {
	if _, err := s.ownedRecipe(ctx, callerID, recipeID); err != nil {
		return false, err
	}
	return s.lines.Delete(ctx, recipeID, ingredientID)
}

func (s *RecipeService) ClearIngredients(ctx context.Context, callerID, recipeID int64) (int64, error) {
	if _, err := s.ownedRecipe(ctx, callerID, recipeID); err != nil {
		return 0, err
	}
	return s.lines.DeleteAllForRecipe(ctx, recipeID)
}

// ownedRecipe loads the recipe and verifies the caller owns it. Mutations on
// someone else's recipe fail with ErrForbidden and leave the row untouched.
func (s *RecipeService) ownedRecipe(ctx context.Context, callerID, recipeID int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != callerID {
		if recipe.IsPrivate {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.ErrForbidden
	}
	return recipe, nil
}
