package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-site-backend/api"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rpupo63/portfolio-site-backend/storage"
)

func main() {
	config.LoadDotEnv()
	c := config.New()
	setupLogging(c)

	log.Info().Msg("Initializing app...")

	ctx := context.Background()

	if prefix := config.GetString(c, "SSM_PARAMETER_PREFIX", ""); prefix != "" {
		client, err := config.NewSSMClient(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating SSM client")
		}
		params, err := config.LoadSSM(ctx, client, prefix)
		if err != nil {
			log.Fatal().Err(err).Str("prefix", prefix).Msg("Error loading SSM parameters")
		}
		c = config.Merge(c, params)
		log.Info().Int("count", len(params)).Str("prefix", prefix).Msg("Loaded SSM parameters")
	}

	db, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// If generating column mismatch report, run report and exit
	if isEnabled(c, "GENERATE_COLUMN_REPORT") {
		log.Info().Msg("Generating column mismatch report...")
		if err := models.WriteColumnMismatchReport(os.Stdout, db); err != nil {
			log.Fatal().Err(err).Msg("Error generating column mismatch report")
		}
		return
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	// If seeding, load the sample portfolio and exit
	if isEnabled(c, "SEED_DATA") {
		log.Info().Msg("Loading portfolio data...")
		report, err := database.Seed(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("Error seeding database")
		}
		log.Info().Interface("report", report).Msg("All data loaded successfully")
		return
	}

	currentDB := database.New(db)

	backend, err := storage.NewFromConfig(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing media storage")
	}
	resolver := services.NewMediaResolver(backend)

	svc := api.Services{
		Portfolio: services.NewPortfolioService(currentDB, resolver),
		Contact: services.NewContactService(
			currentDB.ContactMessageRepo(),
			currentDB.ProfileRepo(),
			services.NotifiersFromConfig(c),
			services.FallbackRecipient(c),
			config.GetSeconds(c, "NOTIFY_TIMEOUT_SECONDS", 10),
		),
	}

	server, err := api.NewServer(c, currentDB, svc)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// Stop on SIGINT or SIGTERM
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(runCtx, 30*time.Second); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.GetString(c, "LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func isEnabled(c map[string]string, key string) bool {
	return config.GetBool(c, key, false)
}
