package main

import (
	"context"
	"log"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/config"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"
	"dealflow-backend/internal/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Println("Loading initial data from YAML files...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	ctx := context.Background()
	store, err := database.Initialize(ctx, &database.Options{
		Backend:             cfg.SheetsBackend,
		SpreadsheetID:       cfg.SpreadsheetID,
		ServiceAccountEmail: cfg.ServiceAccountEmail,
		PrivateKey:          cfg.ServiceAccountPrivateKey,
	})
	if err != nil {
		log.Fatalf("Failed to open spreadsheet: %v", err)
	}

	// Load data from YAML files
	file, err := seed.LoadDir("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	repos := repository.New(store, cache.New(cfg.CacheTTL, nil))
	summary, err := seed.NewLoader(repos).Load(ctx, file)
	if err != nil {
		log.Fatalf("Failed to write seed data: %v", err)
	}

	for _, collection := range []string{"team", "startups", "projects", "investors"} {
		logrus.Infof("%s: %d created, %d total", collection, summary.Created[collection], summary.Total[collection])
	}
	log.Println("Initial data loaded successfully!")
}
