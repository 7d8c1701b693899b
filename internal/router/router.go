package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipedex/backend/internal/api"
	"github.com/recipedex/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
	allowedOrigins []string,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))

	// Health probes
	router.GET("/ping", healthHandler.Ping)
	router.GET("/health", healthHandler.Health)

	// Recipe routes
	recipeHandler.RegisterRoutes(router.Group(""))

	return router
}
