package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gecko-kitchen/backend/internal/api"
	"github.com/gecko-kitchen/backend/internal/middleware"
)

// SetupRouter configures the application routes and middleware chain.
func SetupRouter(recipeHandler *api.RecipeHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Accept", "Origin", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)

	return router
}
