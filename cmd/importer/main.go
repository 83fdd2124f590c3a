package main

import (
	"context"
	"flag"
	"os"
	"time"

	"agency-locator-api/internal/config"
	"agency-locator-api/internal/models"
	"agency-locator-api/internal/observability"
	"agency-locator-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the postal code CSV file to import")
	driver := flag.String("driver", "", "Target database driver (postgres or sqlite); defaults to DB_DRIVER")
	skipInvalid := flag.Bool("skip-invalid", false, "Skip rows that fail validation instead of aborting")
	flag.Parse()

	observability.SetupLogger("info", "console")

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	if *driver != "" {
		cfg.DBDriver = *driver
	}

	log.Info().Str("file", *file).Str("driver", cfg.DBDriver).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open file")
	}
	locations, rejected, err := parseCSV(f, *skipInvalid)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}
	for _, r := range rejected {
		log.Warn().Int("line", r.Line).Str("reason", r.Reason).Msg("row skipped")
	}

	log.Info().Int("records", len(locations)).Int("skipped", len(rejected)).Msg("parsed CSV")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var imported int64
	switch cfg.DBDriver {
	case config.DriverSQLite:
		imported, err = importSQLite(cfg.SQLitePath, locations)
	case config.DriverPostgres:
		imported, err = importPostgres(ctx, cfg.DBSource, locations)
	default:
		log.Fatal().Str("driver", cfg.DBDriver).Msg("unsupported driver")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error importing records")
	}

	log.Info().Int64("records", imported).Msg("import complete")
}

func importPostgres(ctx context.Context, source string, locations []models.PostalLocation) (int64, error) {
	// Connect to DB
	pool, err := pgxpool.New(ctx, source)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	// Ensure tables exist
	if err := repository.InitPostgresSchema(ctx, pool); err != nil {
		return 0, err
	}

	return repository.ReplacePostalLocations(ctx, pool, locations)
}

func importSQLite(path string, locations []models.PostalLocation) (int64, error) {
	db, err := repository.OpenSQLite(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := repository.InitSQLiteSchema(db); err != nil {
		return 0, err
	}

	return repository.UpsertPostalLocationsSQLite(db, locations)
}
