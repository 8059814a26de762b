package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/glowmatch/backend/config"
	httpDelivery "github.com/glowmatch/backend/internal/delivery/http"
	"github.com/glowmatch/backend/internal/domain"
	"github.com/glowmatch/backend/internal/infrastructure/dataset"
	"github.com/glowmatch/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GlowMatch Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Pick the catalog source: configured CSV file, or the built-in seed
	var source domain.CatalogSource
	if cfg.Catalog.CSVPath != "" {
		source = dataset.NewFileSource(cfg.Catalog.CSVPath)
	} else {
		source = dataset.NewSeedSource()
	}
	log.Printf("Catalog source: %s", source.Name())

	// Initialize usecase layer
	recommender := usecase.NewRecommenderService(usecase.RecommenderConfig{
		MaxFeatures:        cfg.Recommender.MaxFeatures,
		DefaultTopN:        cfg.Recommender.DefaultTopN,
		EnableDebugLogging: cfg.Recommender.EnableDebugLogging || cfg.Server.Environment == "development",
	})

	// Load the catalog and build the recommendation index up front; the
	// server only starts serving with a complete snapshot in place
	rows, err := source.Rows(context.Background())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	snapshot, err := recommender.Reload(rows)
	if err != nil {
		log.Fatalf("Failed to build recommendation index: %v", err)
	}
	log.Printf("Catalog ready: %d products, %d vocabulary terms",
		snapshot.Catalog.Len(), snapshot.Vectorizer.VocabularySize())

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommender)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
