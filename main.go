package main

import (
	"log"
	"net/http"
	"os"

	"festival-orders/config"
	"festival-orders/middleware"
	"festival-orders/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the booth laptop usually has one
	_ = godotenv.Load()

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Festival Booth Order API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🎪 Welcome to the Festival Booth Order API",
			"health":  "/health",
			"orders":  "/api/orders",
			"waiting": "/api/waiting",
		})
	})

	// Uploaded payment images
	if err := os.MkdirAll(config.UploadDir(), 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	r.Static("/uploads", config.UploadDir())

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
