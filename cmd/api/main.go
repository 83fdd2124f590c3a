package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"agency-locator-api/internal/config"
	"agency-locator-api/internal/handler"
	"agency-locator-api/internal/observability"
	"agency-locator-api/internal/repository"
	"agency-locator-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// store is what the service layer and health check need from a backing database.
type store interface {
	service.AgencyRepository
	handler.Pinger
}

//	@title			Agency Locator API
//	@version		1.0
//	@description	Locates food-assistance agencies and their distribution events near a requester.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	observability.SetupLogger(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database connection
	repo, closeStore, err := openStore(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.DBDriver).Msg("cannot connect to db")
	}
	defer closeStore()

	// Initialize layers
	metrics := observability.NewMetrics()

	agencyService := service.NewAgencyService(repo, metrics)
	locationService := service.NewLocationService(repo, metrics)

	r := handler.NewRouter(
		handler.NewAgencyHandler(agencyService),
		handler.NewLocationHandler(locationService),
		handler.NewHealthHandler(repo),
		metrics,
	)

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Str("driver", config.DBDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}

func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DBAutoMigrate {
			if err := repository.InitSQLiteSchema(db); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		return repository.NewSQLiteRepository(db), func() { db.Close() }, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if cfg.DBAutoMigrate {
			if err := repository.InitPostgresSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return repository.NewRepository(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}
