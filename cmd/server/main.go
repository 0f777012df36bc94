package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usersapi/internal/app/server/api"
	"usersapi/internal/app/server/config"
	"usersapi/internal/infrastructure/migration"
	"usersapi/internal/infrastructure/storage/postgres"
	"usersapi/internal/utils/logger"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	// ошибка создания таблицы не мешает серверу стартовать
	if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
		log.Error("failed to create users table", logger.Err(err))
	} else {
		log.Info("users table ready")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: api.New(storage, log),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", slog.String("addr", srv.Addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
