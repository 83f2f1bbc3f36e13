// Command resetpassword overwrites a user's password hash outside the
// HTTP layer. Usage: resetpassword [-config config.yaml] <email> <new-password>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/torfinnnome/fremgang/internal/config"
	"github.com/torfinnnome/fremgang/internal/repository"
)

const bcryptCost = 10

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config config.yaml] <email> <new-password>\n", os.Args[0])
		os.Exit(1)
	}
	email, newPassword := args[0], args[1]

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

	log.Info().Str("email", email).Msg("Changing password")

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	userRepo := repository.NewUserRepository(db)
	changes, err := userRepo.UpdatePasswordByEmail(ctx, email, string(hash))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to update password")
	}

	if changes == 0 {
		log.Error().Str("email", email).Msg("No user found with that email")
		os.Exit(1)
	}
	log.Info().Str("email", email).Msg("Password changed")
}
