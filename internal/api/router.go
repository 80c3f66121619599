package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/recipeshare/recipe-api/internal/api/handler"
	"github.com/recipeshare/recipe-api/internal/api/middleware"
	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/service"
	redisdb "github.com/recipeshare/recipe-api/internal/infrastructure/db/redis"
	"github.com/recipeshare/recipe-api/internal/infrastructure/db/sqlite"
	"github.com/recipeshare/recipe-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, rdb *goredis.Client, jwtSecret string) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recipeshare"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	ingredientRepo := sqlite.NewIngredientRepository(db)
	recipeRepo := sqlite.NewRecipeRepository(db)
	lineRepo := sqlite.NewRecipeIngredientRepository(db)
	favoriteRepo := sqlite.NewFavoriteRepository(db)
	cache := redisdb.NewListingCache(rdb, 5*time.Minute)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo)
	ingredientService := service.NewIngredientService(ingredientRepo, lineRepo, log)
	recipeService := service.NewRecipeService(recipeRepo, lineRepo, log)
	dashboardService := service.NewDashboardService(favoriteRepo, recipeRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, recipeService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(jwtSecret)
	authOptional := middleware.OptionalAuth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password", authHandler.ChangePassword, authRequired)

	// --- User routes ---
	e.GET("/users/me", userHandler.Me, authRequired)
	e.GET("/users/paid", userHandler.Paid, authRequired, middleware.RBAC(domain.RoleAdmin))
	e.GET("/users/search", userHandler.Search, authRequired)
	e.GET("/users/:id/recipes", userHandler.Recipes)
	e.POST("/users/upgrade", authHandler.Upgrade, authRequired)

	// --- Ingredient routes ---
	e.GET("/ingredients", ingredientHandler.List)
	e.GET("/ingredients/:id", ingredientHandler.Get)
	e.GET("/ingredients/:id/recipes", ingredientHandler.Recipes)
	e.POST("/ingredients", ingredientHandler.Create, authRequired)
	e.PUT("/ingredients/:id", ingredientHandler.Update, authRequired)
	e.DELETE("/ingredients/:id", ingredientHandler.Delete, authRequired)

	// --- Recipe routes ---
	e.GET("/recipes", recipeHandler.List)
	e.GET("/recipes/mine", recipeHandler.Mine, authRequired)
	e.GET("/recipes/difficulty/:level", recipeHandler.ByDifficulty)
	e.GET("/recipes/:id", recipeHandler.Get, authOptional)
	e.POST("/recipes", recipeHandler.Create, authRequired)
	e.PATCH("/recipes/:id", recipeHandler.Update, authRequired)
	e.DELETE("/recipes/:id", recipeHandler.Delete, authRequired)

	// --- Recipe ingredient lines ---
	e.GET("/recipes/:id/ingredients", recipeHandler.ListIngredients, authOptional)
	e.PUT("/recipes/:id/ingredients", recipeHandler.SetIngredient, authRequired)
	e.DELETE("/recipes/:id/ingredients", recipeHandler.ClearIngredients, authRequired)
	e.DELETE("/recipes/:id/ingredients/:ingredientId", recipeHandler.RemoveIngredient, authRequired)

	// --- Dashboard ---
	e.GET("/dashboard/liked", dashboardHandler.Liked, authRequired)
	e.GET("/dashboard/recommended", dashboardHandler.Recommended)
	e.GET("/dashboard/category/:name", dashboardHandler.ByCategory)
	e.POST("/recipes/:id/like", dashboardHandler.Like, authRequired)
	e.DELETE("/recipes/:id/like", dashboardHandler.Unlike, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
