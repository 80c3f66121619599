package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// DashboardHandler serves the liked / recommended / category views that back
// the landing dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Liked handles GET /dashboard/liked.
//
// @Summary      List recipes the caller has liked
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Recipe
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/liked [get]
func (h *DashboardHandler) Liked(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	recipes, err := h.service.Liked(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Like handles POST /recipes/:id/like. Liking twice is a no-op.
//
// @Summary      Like a recipe
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Recipe id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id}/like [post]
func (h *DashboardHandler) Like(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Like(c.Request().Context(), callerID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"liked": true})
}

// Unlike handles DELETE /recipes/:id/like.
//
// @Summary      Remove a like
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Recipe id"
// @Success      200  {object}  map[string]bool
// @Router       /recipes/{id}/like [delete]
func (h *DashboardHandler) Unlike(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	removed, err := h.service.Unlike(c.Request().Context(), callerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"removed": removed})
}

// Recommended handles GET /dashboard/recommended — newest public recipes,
// cached.
//
// @Summary      List recommended recipes
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Number of recipes"
// @Success      200  {array}  domain.Recipe
// @Router       /dashboard/recommended [get]
func (h *DashboardHandler) Recommended(c echo.Context) error {
	recipes, err := h.service.Recommended(c.Request().Context(), queryInt(c, "limit", 12))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// ByCategory handles GET /dashboard/category/:name.
//
// @Summary      List public recipes in a category
// @Tags         dashboard
// @Produce      json
// @Param        name    path   string  true   "Category name"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Rows to skip"
// @Success      200  {array}  domain.Recipe
// @Router       /dashboard/category/{name} [get]
func (h *DashboardHandler) ByCategory(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}

	recipes, err := h.service.ByCategory(c.Request().Context(), name,
		queryInt(c, "limit", 12), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}
