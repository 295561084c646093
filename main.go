package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aiclub/website-backend/api"
	"github.com/aiclub/website-backend/config"
	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/media"
	"github.com/aiclub/website-backend/models"
	"github.com/aiclub/website-backend/seed"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogging(c)
	log.Info().Msg("Initializing app...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if prefix := config.GetString(c, "SSM_PARAMETER_PATH", ""); prefix != "" {
		store, err := config.NewParameterStore(ctx, config.GetString(c, "AWS_REGION", ""))
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating parameter store client")
		}
		if _, err := config.OverlayParameters(ctx, store, prefix, c); err != nil {
			log.Fatal().Err(err).Str("path", prefix).Msg("Error loading parameters")
		}
		// parameters may change the log level
		setupLogging(c)
	}

	opts := database.OptionsFromConfig(c)
	log.Info().Str("type", opts.Type).Int("replicas", len(opts.Replicas)).Msg("Connecting to database...")
	db, err := database.Connect(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)
	defer currentDB.Close()

	if config.GetBool(c, "AUTO_MIGRATE", opts.Type == database.TypeSQLite) {
		log.Info().Msg("Running migrations...")
		if err := currentDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, "./generated"); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		if _, err := models.GenerateColumnMismatchReport(db); err != nil {
			log.Fatal().Err(err).Msg("Error generating column report")
		}
		return
	}

	// If seeding, replace the content with sample data and exit
	if config.GetBool(c, "SEED_DATA", false) {
		seedValue := uint64(config.GetInt(c, "SEED_VALUE", int(time.Now().UnixNano())))
		summary, err := seed.New(db, seedValue, time.Now()).Run(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Error seeding database")
		}
		log.Info().Interface("summary", summary).Uint64("seed", seedValue).Msg("Seeding complete")
		return
	}

	resolver, err := media.FromConfig(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring media storage")
	}

	server, err := api.NewServer(currentDB, c, resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	if err := server.Run(ctx, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("Server stopped")
}

// setupLogging applies LOG_LEVEL and switches to the console writer in development.
func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "APP_ENV", "") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
