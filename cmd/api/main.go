package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chefsync/backend/config"
	"github.com/chefsync/backend/internal/api"
	"github.com/chefsync/backend/internal/database"
	"github.com/chefsync/backend/internal/middleware"
	"github.com/chefsync/backend/internal/router"
	"github.com/chefsync/backend/internal/server"
	"github.com/chefsync/backend/internal/service"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Throttling is optional; the service runs without Redis.
	var limiter *middleware.RateLimiter
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		limiter = middleware.NewQueryRateLimiter(redisClient)
	}

	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db))
	mealPlanHandler := api.NewMealPlanHandler(service.NewMealPlanService(db))
	pantryHandler := api.NewPantryHandler(
		service.NewPantryService(db),
		service.NewRecommendationService(db),
	)
	healthHandler := api.NewHealthHandler(db)

	engine := router.SetupRouter(recipeHandler, mealPlanHandler, pantryHandler, healthHandler, logger, limiter)
	srv := server.New(engine, cfg.ServerHost+":"+cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
