package main

import (
	"net/http"
	"os"

	"restaurant-listings-api/config"
	"restaurant-listings-api/handlers"
	"restaurant-listings-api/listings"
	"restaurant-listings-api/logging"
	"restaurant-listings-api/middleware"
	"restaurant-listings-api/routes"
	"restaurant-listings-api/store"
	"restaurant-listings-api/upstream"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func main() {
	logging.Init()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Open the local snapshot store
	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open snapshot database")
	}

	svc := listings.NewService(store.New(db), upstream.New(cfg.UpstreamURL))
	handlers.Init(svc, cfg)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Listings API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "🍽 Welcome to the Restaurant Listings API",
			"health":      "/health",
			"restaurants": "/api/restaurants",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	log.Infof("server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
