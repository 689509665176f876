package main

import (
	"log"

	"printlist-backend/config"
	"printlist-backend/internal/api"
	"printlist-backend/internal/database"
	"printlist-backend/internal/models"
	"printlist-backend/internal/services"
	"printlist-backend/pkg/logger"
)

// @title printlist-backend API
// @version 1.0
// @description Backend for the 3D-print listing optimizer: product submissions, prompt version management and generation testing.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Platform{},
		&models.Category{},
		&models.AIModel{},
		&models.PromptVersion{},
		&models.ProductSubmission{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := services.SeedCategories(); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
