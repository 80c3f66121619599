package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// IngredientHandler handles HTTP requests for the ingredient catalog.
type IngredientHandler struct {
	service ports.IngredientService
}

func NewIngredientHandler(service ports.IngredientService) *IngredientHandler {
	return &IngredientHandler{service: service}
}

type ingredientRequest struct {
	Name string `json:"name" validate:"required"`
}

type createOrGetResponse struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// List handles GET /ingredients. With ?query= it becomes a typeahead prefix
// search, otherwise a paginated listing.
//
// @Summary      List or search ingredients
// @Tags         ingredients
// @Produce      json
// @Param        query   query  string  false  "Prefix to search for"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Rows to skip"
// @Success      200  {array}  domain.Ingredient
// @Router       /ingredients [get]
func (h *IngredientHandler) List(c echo.Context) error {
	if q := c.QueryParam("query"); q != "" {
		rows, err := h.service.Search(c.Request().Context(), q, queryInt(c, "limit", 20))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rows)
	}

	rows, err := h.service.List(c.Request().Context(),
		queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /ingredients/:id.
//
// @Summary      Get an ingredient by id
// @Tags         ingredients
// @Produce      json
// @Param        id  path  int  true  "Ingredient id"
// @Success      200  {object}  domain.Ingredient
// @Failure      404  {object}  errorResponse
// @Router       /ingredients/{id} [get]
func (h *IngredientHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ing, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ing)
}

// Create handles POST /ingredients — idempotent create-or-get. Returns 201
// when a row was inserted and 200 when the name already existed.
//
// @Summary      Create an ingredient (idempotent)
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ingredientRequest  true  "Ingredient name"
// @Success      200   {object}  createOrGetResponse
// @Success      201   {object}  createOrGetResponse
// @Failure      400   {object}  errorResponse
// @Router       /ingredients [post]
func (h *IngredientHandler) Create(c echo.Context) error {
	if _, _, err := ctxCaller(c); err != nil {
		return err
	}

	var req ingredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreateOrGet(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, createOrGetResponse{ID: result.ID, Created: result.Created})
}

// Update handles PUT /ingredients/:id.
//
// @Summary      Rename an ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "Ingredient id"
// @Param        body  body  ingredientRequest  true  "New name"
// @Success      200   {object}  updateRecipeResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /ingredients/{id} [put]
func (h *IngredientHandler) Update(c echo.Context) error {
	if _, _, err := ctxCaller(c); err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req ingredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	if !result.Updated {
		switch result.Reason {
		case ports.ReasonNotFound:
			return c.JSON(http.StatusNotFound, errorResponse{Error: "ingredient not found"})
		case ports.ReasonDuplicate:
			return c.JSON(http.StatusConflict, errorResponse{Error: "ingredient name already exists"})
		case ports.ReasonNoChange:
			return c.JSON(http.StatusOK, updateRecipeResponse{Updated: false, Reason: result.Reason})
		}
	}
	return c.JSON(http.StatusOK, updateRecipeResponse{Updated: true})
}

// Delete handles DELETE /ingredients/:id. Deletion is blocked with 409 and
// reason in_use while any recipe references the ingredient.
//
// @Summary      Delete an unused ingredient
// @Tags         ingredients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Ingredient id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  map[string]string
// @Router       /ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c echo.Context) error {
	if _, _, err := ctxCaller(c); err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !result.Deleted {
		switch result.Reason {
		case ports.ReasonNotFound:
			return c.JSON(http.StatusNotFound, errorResponse{Error: "ingredient not found"})
		case ports.ReasonInUse:
			return c.JSON(http.StatusConflict, map[string]string{
				"error":  "ingredient is used by recipes",
				"reason": result.Reason,
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// Recipes handles GET /ingredients/:id/recipes — the reverse lookup.
//
// @Summary      List public recipes using an ingredient
// @Tags         ingredients
// @Produce      json
// @Param        id  path  int  true  "Ingredient id"
// @Success      200  {array}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /ingredients/{id}/recipes [get]
func (h *IngredientHandler) Recipes(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	recipes, err := h.service.RecipesUsing(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}
