// Command server runs the platcon REST API.
//
//	@title						Platcon API
//	@version					1.0
//	@description				CRUD API for users, members, channels and contents.
//	@BasePath					/api/v1
//	@schemes					http https
//	@accept						json
//	@produce					json
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/docs"
	"github.com/platcon/platcon-api/internal/config"
	httpapi "github.com/platcon/platcon-api/internal/http"
	"github.com/platcon/platcon-api/internal/observability"
	"github.com/platcon/platcon-api/internal/repo"
	"github.com/platcon/platcon-api/internal/sysutil"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	sysutil.SetLogLevel(cfg.LogLevel)
	logger := sysutil.NewLogger(os.Stdout, cfg.LogPretty, cfg.OTEL.ServiceName)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	gin.SetMode(cfg.GinMode)

	version := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), "dev")
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	docs.SwaggerInfo.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("database setup failed")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go sysutil.RunEvery(ctx, cfg.IdempotencySweep, "idempotency-purge", func(ctx context.Context) error {
		n, err := repo.PurgeIdempotency(ctx, db, time.Now().UTC())
		if err == nil && n > 0 {
			zerolog.Ctx(ctx).Debug().Int64("purged", n).Msg("expired idempotency keys removed")
		}
		return err
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_path", cfg.APIBasePath).
			Str("driver", cfg.DB.Driver).
			Str("version", version).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("otel shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server exited")
}

// openDB connects to the configured store and brings the schema up to date.
// Postgres uses the versioned migrations; SQLite is migrated from the models.
func openDB(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	db, err := repo.Open(repo.Options{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.DSN(),
		MaxOpenConns: cfg.DB.MaxOpenConns,
		Tracing:      cfg.OTEL.Enabled,
	})
	if err != nil {
		return nil, err
	}
	if !cfg.DB.AutoMigrate {
		return db, nil
	}
	if cfg.DB.Driver == repo.DriverPostgres {
		err = repo.Migrate(ctx, db)
	} else {
		err = repo.AutoMigrate(db)
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}
