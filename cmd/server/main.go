package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fitform/backend/config"
	httpDelivery "github.com/fitform/backend/internal/delivery/http"
	"github.com/fitform/backend/internal/domain"
	"github.com/fitform/backend/internal/infrastructure/cache"
	"github.com/fitform/backend/internal/infrastructure/storefront"
	"github.com/fitform/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FitForm Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s (TTL %s)", cfg.Cache.Type, cfg.Cache.TTL)

	productCache := cache.NewMemoryCache()

	var storefrontClient domain.StorefrontClient
	if cfg.Storefront.BaseURL != "" {
		client := storefront.NewClient(cfg.Storefront.BaseURL)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Storefront client debug mode enabled")
		}
		storefrontClient = client
		log.Printf("Storefront configured: %s", cfg.Storefront.BaseURL)
	} else {
		log.Printf("Storefront base URL not set; handle resolution disabled, products must be sent inline")
	}

	sizingService := usecase.NewRecommendationService(usecase.EngineConfig{
		EnableDebugLogging: cfg.Engine.DebugLogging,
	})

	handler := httpDelivery.NewHandler(sizingService, storefrontClient, productCache, cfg.Cache.TTL)

	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
