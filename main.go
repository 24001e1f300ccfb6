// main.go
package main

import (
	"context"
	"log"

	"filmorate/cmd"
	"filmorate/internal/data/repository"
	"filmorate/internal/wire"
	"filmorate/pkg/cache"
	"filmorate/pkg/database"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
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
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema up to date")
	}

	// Optional lookup cache
	lookupCache, err := cache.NewRedis(ctx, config.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, lookup cache disabled", zap.Error(err))
		lookupCache = cache.Noop{}
	}
	defer lookupCache.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, lookupCache, db, config, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
