package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// UserHandler handles read-side user routes.
type UserHandler struct {
	users   ports.UserService
	recipes ports.RecipeService
}

func NewUserHandler(users ports.UserService, recipes ports.RecipeService) *UserHandler {
	return &UserHandler{users: users, recipes: recipes}
}

// Me handles GET /users/me.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Paid handles GET /users/paid — admin-only listing of paying accounts.
//
// @Summary      List paid accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (1-200)"
// @Param        offset  query  int  false  "Rows to skip"
// @Success      200  {array}  domain.User
// @Failure      403  {object}  errorResponse
// @Router       /users/paid [get]
func (h *UserHandler) Paid(c echo.Context) error {
	users, err := h.users.ListPaid(c.Request().Context(),
		queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Search handles GET /users/search?query=.
//
// @Summary      Search users by username prefix
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query   query  string  true   "Username prefix"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {array}  domain.User
// @Router       /users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	if _, _, err := ctxCaller(c); err != nil {
		return err
	}

	q := c.QueryParam("query")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	users, err := h.users.Search(c.Request().Context(), q,
		queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Recipes handles GET /users/:id/recipes — the public profile view. Private
// recipes never appear here, not even for the owner.
//
// @Summary      List a user's public recipes
// @Tags         users
// @Produce      json
// @Param        id      path   int  true   "User id"
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Rows to skip"
// @Success      200  {array}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/recipes [get]
func (h *UserHandler) Recipes(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.users.GetProfile(c.Request().Context(), id); err != nil {
		return err
	}

	recipes, err := h.recipes.ListByUser(c.Request().Context(), id,
		queryInt(c, "limit", 12), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}
