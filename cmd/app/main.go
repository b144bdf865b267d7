package main

import (
	"os"
	"resto/config"
	"resto/di"
	"resto/helper"
	"resto/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Resto Table API
// @version 1.0
// @description Tracks which restaurant tables are empty or busy today.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	log.Logger = logger.Output(cfg, os.Stdout)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
