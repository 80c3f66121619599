package domain

import (
	"errors"
	"time"
)

// Difficulty labels derived from cook time and ingredient count.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// List orderings accepted by the public recipe listing.
const (
	OrderNew  = "new"  // created_at descending (default)
	OrderOld  = "old"  // created_at ascending
	OrderTime = "time" // cook_time ascending
)

var ErrRecipeNotFound = errors.New("recipe not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidInput = errors.New("invalid input")

// Recipe is the core aggregate root. Ingredients is populated on read paths
// that embed the association rows; it is nil on bare writes.
type Recipe struct {
	ID           int64            `json:"id"`
	UserID       int64            `json:"user_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	CookTime     int              `json:"cook_time"`
	BaseServings int              `json:"base_servings"`
	IsPrivate    bool             `json:"is_private"`
	Difficulty   string           `json:"difficulty,omitempty"`
	Category     string           `json:"category,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Ingredients  []IngredientLine `json:"ingredients,omitempty"`
}

// IngredientLine is an ingredient as embedded in a recipe view: the catalog
// row annotated with the per-serving quantity from the association.
type IngredientLine struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Note     string `json:"note,omitempty"`
}

// RecipeIngredient is the join row carrying per-serving quantity for a
// (recipe, ingredient) pair. At most one row exists per pair.
type RecipeIngredient struct {
	RecipeID     int64  `json:"recipe_id"`
	IngredientID int64  `json:"ingredient_id"`
	Quantity     string `json:"quantity,omitempty"`
	Unit         string `json:"unit,omitempty"`
	Note         string `json:"note,omitempty"`
}

// DifficultyFor derives the difficulty label from cook time in minutes and
// the number of ingredients. The medium clause is a disjunction: six or
// fewer ingredients can never escalate to Hard regardless of cook time.
func DifficultyFor(cookTime, ingredientCount int) string {
	if cookTime <= 20 && ingredientCount <= 3 {
		return DifficultyEasy
	}
	if (cookTime > 20 && cookTime <= 45) || ingredientCount <= 6 {
		return DifficultyMedium
	}
	return DifficultyHard
}

// ValidDifficulty reports whether s is a known difficulty label.
func ValidDifficulty(s string) bool {
	return s == DifficultyEasy || s == DifficultyMedium || s == DifficultyHard
}
