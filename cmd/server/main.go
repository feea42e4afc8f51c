package main

import (
	"context"
	"log"
	"os"

	"rightsguard-backend/ai"
	"rightsguard-backend/handlers"
	"rightsguard-backend/service"
	"rightsguard-backend/storage"
	"rightsguard-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	ctx := context.Background()

	// Initialize content store (memory or postgres, from CONTENT_STORE)
	contentStore, closeStore, err := store.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize content store: %v", err)
	}
	defer closeStore()
	log.Println("Content store initialized")

	// Initialize the generative backend. A missing GEMINI_API_KEY is not an
	// error: the script service runs in fallback mode without it.
	var generator ai.Generator
	gemini, err := ai.NewGeminiFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	if gemini != nil {
		defer gemini.Close()
		generator = gemini
		log.Println("Gemini client initialized")
	} else {
		log.Println("Warning: GEMINI_API_KEY not set, script generation runs in fallback mode")
	}

	// Initialize bundle snapshot storage
	bundleStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize bundle storage: %v", err)
	}
	log.Println("Bundle storage initialized")

	// Initialize services
	contentService := service.NewContentService(
		service.WithContentStore(contentStore),
	)
	scriptService := service.NewScriptService(
		service.WithGenerator(generator),
		service.WithScriptStore(contentStore),
	)
	bundleService := service.NewBundleService(
		service.BundleWithContentStore(contentStore),
		service.BundleWithBlobStorage(bundleStorage),
	)

	// Initialize handlers
	cardHandler := handlers.NewCardHandler(contentService)
	categoryHandler := handlers.NewCategoryHandler(contentService)
	orgHandler := handlers.NewOrgHandler(contentService)
	scriptHandler := handlers.NewScriptHandler(scriptService)
	bundleHandler := handlers.NewBundleHandler(bundleService)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Rights card endpoints
		api.GET("/cards", cardHandler.ListCards)
		api.GET("/cards/:id", cardHandler.GetCard)
		api.GET("/cards/:id/scripts", cardHandler.GetCardScripts)
		api.GET("/popular-cards", cardHandler.PopularCards)
		api.GET("/recent-cards", cardHandler.RecentCards)

		// Scenario taxonomy endpoints
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id/cards", categoryHandler.GetCategoryCards)

		// Legal-aid directory endpoints
		api.GET("/legal-aid", orgHandler.ListOrgs)

		// Script generation endpoint
		api.POST("/generate-script", scriptHandler.GenerateScript)

		// Offline bundle endpoints
		api.GET("/offline-bundle", bundleHandler.GetOfflineBundle)
		api.POST("/offline-bundle/export", bundleHandler.ExportOfflineBundle)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
