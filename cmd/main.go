package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	httpadapter "lifted/internal/adapter/http"
	"lifted/internal/adapter/notify"
	"lifted/internal/adapter/postgres"
	"lifted/internal/adapter/usecase"
	"lifted/internal/config"
	"lifted/internal/db"
)

// main loads configuration, optionally runs database migrations and seeding,
// wires the repositories and usecases, then serves HTTP until a termination
// signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var logger zerolog.Logger
	{
		var out = zerolog.New(os.Stdout)
		if cfg.Env == "dev" {
			out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
		}
		logger = out.Level(cfg.Log.ZerologLevel()).With().Timestamp().Logger()
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error().Err(err).Msg("migration error")
		} else {
			logger.Info().Msg("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error().Err(err).Msg("database connection error")
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error().Err(err).Msg("seed error")
		} else {
			logger.Info().Msg("demo data seeded")
		}
	}

	users := postgres.NewUserRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	donations := postgres.NewDonationRepository(pool)

	events := notify.NewLogNotifier(logger)

	authSvc := usecase.NewAuthUseCase(users)
	campaignSvc := usecase.NewCampaignUseCase(campaigns)
	donationSvc := usecase.NewDonationUseCase(donations, campaigns, users, events, cfg.Donation, logger)

	handler := httpadapter.NewHandler(authSvc, campaignSvc, donationSvc, cfg.Auth, cfg.HTTP, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info().Uint16("port", cfg.HTTP.Port).Msg("server listening")
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	} else {
		logger.Info().Msg("server gracefully stopped")
	}
}
