package main

import (
	"context"
	"log"
	"os"

	"dealflow-backend/internal/api/routes"
	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/config"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "dealflow-backend/docs" // This is needed for swag
)

//	@title			Dealflow Backend API
//	@version		1.0
//	@description	Backend API for the fundraising CRM: startups, projects, tasks, investors and per-project investor pipelines stored in a Google Sheets spreadsheet.

//	@contact.name	API Support

//	@host		localhost:7008
//	@BasePath	/api

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	// Open the spreadsheet
	store, err := database.Initialize(context.Background(), &database.Options{
		Backend:             cfg.SheetsBackend,
		SpreadsheetID:       cfg.SpreadsheetID,
		ServiceAccountEmail: cfg.ServiceAccountEmail,
		PrivateKey:          cfg.ServiceAccountPrivateKey,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize spreadsheet store:", err)
	}
	if cfg.SheetsBackend == database.BackendMemory {
		logrus.Warn("Using the in-memory spreadsheet; data is lost on restart")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	repos := repository.New(store, cache.New(cfg.CacheTTL, nil))
	router := routes.SetupRoutes(repos, cfg)

	logrus.WithFields(logrus.Fields{
		"backend":   cfg.SheetsBackend,
		"cache_ttl": cfg.CacheTTL.String(),
	}).Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
