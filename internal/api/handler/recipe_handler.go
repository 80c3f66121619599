package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// Create handles POST /recipes.
//
// @Summary      Create a recipe with its ingredient lines
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecipeRequest  true  "Recipe details"
// @Success      201   {object}  createRecipeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateRecipeInput{
		Name:         req.Name,
		Description:  req.Description,
		CookTime:     req.CookTime,
		BaseServings: req.BaseServings,
		IsPrivate:    req.IsPrivate,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
	}
	for _, line := range req.Ingredients {
		input.Ingredients = append(input.Ingredients, ports.RecipeLineInput{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			Note:         line.Note,
		})
	}

	result, err := h.service.Create(c.Request().Context(), callerID, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createRecipeResponse{
		RecipeID:   result.ID,
		Difficulty: result.Difficulty,
	})
}

// List handles GET /recipes — the public listing with embedded ingredients.
//
// @Summary      List public recipes
// @Tags         recipes
// @Produce      json
// @Param        limit   query  int     false  "Page size (1-50)"
// @Param        offset  query  int     false  "Rows to skip"
// @Param        order   query  string  false  "new | old | time"
// @Success      200  {array}  domain.Recipe
// @Router       /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.service.ListPublic(c.Request().Context(), ports.ListRecipesFilter{
		Limit:  queryInt(c, "limit", 12),
		Offset: queryInt(c, "offset", 0),
		Order:  c.QueryParam("order"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Get handles GET /recipes/:id. Private recipes resolve only for their
// owner; the route sits behind OptionalAuth.
//
// @Summary      Get a recipe by id
// @Tags         recipes
// @Produce      json
// @Param        id  path  int  true  "Recipe id"
// @Success      200  {object}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.service.Get(c.Request().Context(), ctxCallerID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Mine handles GET /recipes/mine — the caller's recipes, private included.
//
// @Summary      List own recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Recipe
// @Router       /recipes/mine [get]
func (h *RecipeHandler) Mine(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	recipes, err := h.service.ListMine(c.Request().Context(), callerID,
		queryInt(c, "limit", 12), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Update handles PATCH /recipes/:id. The body is an arbitrary JSON object;
// only whitelisted fields take effect, everything else is ignored.
//
// @Summary      Partially update a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int             true  "Recipe id"
// @Param        body  body  map[string]any  true  "Fields to update"
// @Success      200  {object}  updateRecipeResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id} [patch]
func (h *RecipeHandler) Update(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Update(c.Request().Context(), callerID, id, fields)
	if err != nil {
		return err
	}
	if !result.Updated && result.Reason == ports.ReasonNoFields {
		return c.JSON(http.StatusBadRequest, updateRecipeResponse{Updated: false, Reason: result.Reason})
	}
	return c.JSON(http.StatusOK, updateRecipeResponse{Updated: result.Updated, Reason: result.Reason})
}

// Delete handles DELETE /recipes/:id.
//
// @Summary      Delete a recipe and its ingredient lines
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Recipe id"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), callerID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// ByDifficulty handles GET /recipes/difficulty/:level.
//
// @Summary      List public recipes by difficulty
// @Tags         recipes
// @Produce      json
// @Param        level  path  string  true  "Easy | Medium | Hard"
// @Success      200  {array}  domain.Recipe
// @Router       /recipes/difficulty/{level} [get]
func (h *RecipeHandler) ByDifficulty(c echo.Context) error {
	recipes, err := h.service.ListByDifficulty(c.Request().Context(), c.Param("level"),
		queryInt(c, "limit", 12), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// ListIngredients handles GET /recipes/:id/ingredients.
//
// @Summary      List a recipe's ingredient lines
// @Tags         recipes
// @Produce      json
// @Param        id  path  int  true  "Recipe id"
// @Success      200  {array}  domain.IngredientLine
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id}/ingredients [get]
func (h *RecipeHandler) ListIngredients(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.service.Get(c.Request().Context(), ctxCallerID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe.Ingredients)
}

// SetIngredient handles PUT /recipes/:id/ingredients — upsert of one line.
//
// @Summary      Add or replace an ingredient line
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "Recipe id"
// @Param        body  body  recipeLineRequest  true  "Ingredient line"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id}/ingredients [put]
func (h *RecipeHandler) SetIngredient(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req recipeLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.SetIngredient(c.Request().Context(), callerID, id, ports.RecipeLineInput{
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Note:         req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"saved": true})
}

// RemoveIngredient handles DELETE /recipes/:id/ingredients/:ingredientId.
//
// @Summary      Remove one ingredient line
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id            path  int  true  "Recipe id"
// @Param        ingredientId  path  int  true  "Ingredient id"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id}/ingredients/{ingredientId} [delete]
func (h *RecipeHandler) RemoveIngredient(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		return err
	}

	deleted, err := h.service.RemoveIngredient(c.Request().Context(), callerID, id, ingredientID)
	if err != nil {
		return err
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "ingredient not on recipe"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// ClearIngredients handles DELETE /recipes/:id/ingredients.
//
// @Summary      Remove all ingredient lines from a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Recipe id"
// @Success      200  {object}  deleteCountResponse
// @Failure      403  {object}  errorResponse
// @Router       /recipes/{id}/ingredients [delete]
func (h *RecipeHandler) ClearIngredients(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	count, err := h.service.ClearIngredients(c.Request().Context(), callerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteCountResponse{DeletedCount: count})
}

// paramID parses an integer path parameter.
func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
