// Command migratetimestamps rewrites event timestamps that still carry an
// explicit UTC/offset format into the local-time layout older rows use.
// The whole batch runs in one transaction; a failure leaves every
// timestamp as it was.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/torfinnnome/fremgang/internal/config"
	"github.com/torfinnnome/fremgang/internal/maintenance"
	"github.com/torfinnnome/fremgang/internal/repository"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	eventRepo := repository.NewEventRepository(db)
	updated, err := eventRepo.MigrateTimestamps(ctx, maintenance.ConvertToLocal)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed, all timestamps left intact")
	}

	if updated == 0 {
		log.Info().Msg("No UTC timestamps found, nothing to update")
		return
	}
	log.Info().Int("updated", updated).Msg("Timestamps migrated")
}
