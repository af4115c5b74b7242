// Command seed replaces all transactions in the record store with the
// seed document.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/config"
	"github.com/salesboard/backend/internal/logging"
	"github.com/salesboard/backend/internal/seed"
	"github.com/salesboard/backend/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Configuration")
		return 1
	}
	logging.Setup(cfg, os.Stdout)

	ctx := context.Background()

	s, err := store.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Store")
		return 1
	}
	defer s.Close()

	loader := seed.Loader{
		Client: &http.Client{Timeout: cfg.SeedTimeout},
		URL:    cfg.SeedURL,
		Store:  s,
	}

	count, err := loader.Run(ctx)
	if err != nil {
		log.Error().Err(err).Str("url", cfg.SeedURL).Msg("Seed")
		return 1
	}

	log.Info().Int("count", count).Msg("Database seeded successfully")
	return 0
}
