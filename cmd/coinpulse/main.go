package main

import (
	"github.com/RavinduUni/coinpulse/internal/infrastructure/clients"
	"github.com/RavinduUni/coinpulse/internal/server"
	"github.com/RavinduUni/coinpulse/pkg/config"
	"github.com/RavinduUni/coinpulse/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log = logger.NewWithConfig(logger.Config{
		Level:  cfg.Logger.Level,
		Pretty: cfg.Logger.Pretty,
	})

	marketClient := clients.New(cfg.Upstream, log)

	srv := server.New(cfg, marketClient, log)
	srv.Start()
}
