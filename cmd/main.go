package main

import (
	"log"
	"os"

	"caloreat/cmd/config"
	migration "caloreat/cmd/database/migrate"
	"caloreat/internal/utils"
	"caloreat/internal/utils/storage"
	"caloreat/pkg/oracle"

	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	s3, err := storage.NewAwsS3(cfg)
	if err != nil {
		logger.Fatal("failed to configure object storage", zap.Error(err))
	}

	app, err := config.NewApp(config.Dependencies{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Oracle: oracle.NewClient(oracle.Config{BaseURL: cfg.AIAnalysisURL, Timeout: cfg.AITimeout()}),
		S3:     s3,
		Clock:  utils.RealClock{},
	})
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	logger.Info("starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
