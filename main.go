package main

import (
	"context"
	"log"

	"project-portal/cmd"
	"project-portal/internal/data/repository"
	"project-portal/internal/usecase"
	"project-portal/internal/wire"
	"project-portal/pkg/database"
	"project-portal/pkg/notify"
	"project-portal/pkg/storage"
	"project-portal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	// File storage for tab attachments
	files, err := storage.NewS3Storage(ctx, config.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to init file storage", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	deps := usecase.Dependencies{
		Notifier: notify.NewNotifier(config, logger),
		Hasher:   utils.NewBcryptHasher(bcrypt.DefaultCost),
		Storage:  files,
	}

	app := wire.Wiring(repos, deps, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
