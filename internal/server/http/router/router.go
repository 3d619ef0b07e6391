package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/anvilforge/storefront/internal/server/http/handlers"
	"github.com/anvilforge/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	buildHandler := handlers.NewBuildHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	catalogGroup := api.Group("/catalog")
	catalogGroup.GET("/components", catalogHandler.Components)
	catalogGroup.GET("/systems", catalogHandler.Systems)
	catalogGroup.GET("/systems/:id", catalogHandler.SystemByID)

	cart := api.Group("/cart")
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.GET("/count", cartHandler.Count)
	cart.POST("/items", cartHandler.AddItem)
	cart.DELETE("/items", cartHandler.RemoveItem)
	cart.PATCH("/items", cartHandler.UpdateQuantity)
	cart.PATCH("/items/:index", cartHandler.AdjustLine)
	cart.POST("/save-for-later", cartHandler.SaveForLater)
	cart.GET("/saved", cartHandler.Saved)
	cart.POST("/saved/restore", cartHandler.Restore)

	api.POST("/checkout", orderHandler.Checkout)
	api.GET("/orders/:id", orderHandler.Status)

	api.POST("/builds", buildHandler.Save)
	api.GET("/builds", buildHandler.List)

	return engine
}
