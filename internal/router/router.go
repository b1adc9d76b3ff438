package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chefsync/backend/internal/api"
	"github.com/chefsync/backend/internal/middleware"
)

// SetupRouter configures the application routes. limiter may be nil when
// no Redis is configured; throttling is then skipped.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	mealPlanHandler *api.MealPlanHandler,
	pantryHandler *api.PantryHandler,
	healthHandler *api.HealthHandler,
	logger *zap.Logger,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	healthHandler.RegisterRoutes(router)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.Middleware())
	}

	recipeHandler.RegisterRoutes(v1)
	mealPlanHandler.RegisterRoutes(v1)
	pantryHandler.RegisterRoutes(v1)

	return router
}
