// main.go
package main

import (
	"context"
	"log"

	"cinema-tickets/cmd"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/wire"
	"cinema-tickets/pkg/database"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Int("adult_price", config.Ticket.AdultPrice),
		zap.Int("child_price", config.Ticket.ChildPrice),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to prepare ledger tables", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(context.Background(), app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
