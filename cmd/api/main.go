package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipedex/backend/config"
	"github.com/recipedex/backend/internal/api"
	"github.com/recipedex/backend/internal/cache"
	"github.com/recipedex/backend/internal/database"
	"github.com/recipedex/backend/internal/mealdb"
	"github.com/recipedex/backend/internal/router"
	"github.com/recipedex/backend/internal/server"
	"github.com/recipedex/backend/internal/service"
	"github.com/recipedex/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	// The cache is a performance path, not a correctness one: a dead
	// Redis means every lookup goes straight to the gateway.
	var backend cache.Backend
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		backend = cache.NewNoopBackend()
	} else {
		backend = cache.NewRedisBackend(redisClient)
	}

	gateway := mealdb.NewClient(cfg.MealDBBaseURL, cfg.MealDBTimeout, logger)
	recipeCache := cache.NewRecipeCache(backend, gateway, cfg.CacheTTL, logger)
	recipeStore := store.NewRecipeStore(db, logger)
	aggregator := service.NewAggregator(recipeStore, recipeCache, gateway, logger)

	recipeHandler := api.NewRecipeHandler(aggregator)
	healthHandler := api.NewHealthHandler(db, redisClient)

	engine := router.SetupRouter(recipeHandler, healthHandler, cfg.AllowedOrigins, logger)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort, logger)

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

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
