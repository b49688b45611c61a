package main

import (
	"context"
	"roomcal/config"
	"roomcal/di"
	"roomcal/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	if err := app.Worker.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start refresh worker")
	}

	app.HTTP.OnShutdown(app.Worker)
	app.HTTP.Serve()
}
