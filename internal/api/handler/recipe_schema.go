package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type recipeLineRequest struct {
	IngredientID int64  `json:"ingredient_id"        validate:"required,gt=0"`
	Quantity     string `json:"quantity_per_serving" validate:"required"`
	Unit         string `json:"unit"`
	Note         string `json:"note"`
}

type createRecipeRequest struct {
	Name         string              `json:"name"          validate:"required"`
	Description  string              `json:"description"`
	CookTime     int                 `json:"cook_time"     validate:"gte=0"`
	BaseServings int                 `json:"base_servings" validate:"required,gt=0"`
	IsPrivate    bool                `json:"is_private"`
	Category     string              `json:"category"`
	ImageURL     string              `json:"image_url"`
	Ingredients  []recipeLineRequest `json:"ingredients"   validate:"omitempty,dive"`
}

type createRecipeResponse struct {
	RecipeID   int64  `json:"recipe_id"`
	Difficulty string `json:"difficulty"`
}

type updateRecipeResponse struct {
	Updated bool   `json:"updated"`
	Reason  string `json:"reason,omitempty"`
}

type deleteCountResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
