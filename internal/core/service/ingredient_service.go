package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recipeshare/recipe-api/internal/api/metrics"
	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// IngredientService implements catalog use cases.
type IngredientService struct {
	ingredients ports.IngredientRepository
	lines       ports.RecipeIngredientRepository
	logger      zerolog.Logger
}

func NewIngredientService(ingredients ports.IngredientRepository, lines ports.RecipeIngredientRepository, logger zerolog.Logger) *IngredientService {
	return &IngredientService{ingredients: ingredients, lines: lines, logger: logger}
}

func (s *IngredientService) CreateOrGet(ctx context.Context, name string) (ports.CreateOrGetResult, error) {
	result, err := s.ingredients.CreateOrGet(ctx, name)
	if err != nil {
		return ports.CreateOrGetResult{}, err
	}

	if result.Created {
		metrics.IngredientsCreatedTotal.WithLabelValues("created").Inc()
		s.logger.Info().Int64("ingredient_id", result.ID).Msg("ingredient created")
	} else {
		metrics.IngredientsCreatedTotal.WithLabelValues("existing").Inc()
	}
	return result, nil
}

func (s *IngredientService) List(ctx context.Context, limit, offset int) ([]domain.Ingredient, error) {
	return s.ingredients.List(ctx, limit, offset)
}

func (s *IngredientService) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.ingredients.FindByID(ctx, id)
}

func (s *IngredientService) Update(ctx context.Context, id int64, name string) (ports.UpdateResult, error) {
	return s.ingredients.Update(ctx, id, name)
}

func (s *IngredientService) Delete(ctx context.Context, id int64) (ports.DeleteResult, error) {
	return s.ingredients.Delete(ctx, id)
}

func (s *IngredientService) Search(ctx context.Context, keyword string, limit int) ([]domain.Ingredient, error) {
	return s.ingredients.SearchByName(ctx, keyword, limit)
}

func (s *IngredientService) RecipesUsing(ctx context.Context, ingredientID int64) ([]domain.Recipe, error) {
	if _, err := s.ingredients.FindByID(ctx, ingredientID); err != nil {
		return nil, err
	}
	return s.lines.ListRecipesForIngredient(ctx, ingredientID)
}
