package main

import (
	"context"
	"log"

	"rightsguard-backend/service"
	"rightsguard-backend/storage"
	"rightsguard-backend/store"

	"github.com/joho/godotenv"
)

// Builds the offline bundle from the configured content store and uploads it
// to bundle storage (local disk or S3).
func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	ctx := context.Background()

	contentStore, closeStore, err := store.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize content store: %v", err)
	}
	defer closeStore()

	bundleStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize bundle storage: %v", err)
	}

	bundleService := service.NewBundleService(
		service.BundleWithContentStore(contentStore),
		service.BundleWithBlobStorage(bundleStorage),
	)

	path, err := bundleService.ExportBundle(ctx)
	if err != nil {
		log.Fatalf("Failed to export bundle: %v", err)
	}

	log.Printf("✓ Offline bundle exported to %s", path)
}
