// main.go
package main

import (
	"log"

	"price-predictor/cmd"
	"price-predictor/internal/data/repository"
	"price-predictor/internal/wire"
	"price-predictor/pkg/httpclient"
	"price-predictor/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Prediction endpoint client
	client, err := httpclient.InitClient(config.Predictor)
	if err != nil {
		logger.Fatal("Failed to init predictor client", zap.Error(err))
	}

	logger.Info("Prediction endpoint configured",
		zap.String("url", config.Predictor.PredictURL()),
		zap.Duration("timeout", config.Predictor.Timeout),
	)

	repos := repository.NewRepository(client, config.Predictor.PredictURL(), logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
