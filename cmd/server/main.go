package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guardbill/guardbill/internal/api"
	"github.com/guardbill/guardbill/internal/config"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/postgres"
	"github.com/guardbill/guardbill/internal/repository"
	"github.com/guardbill/guardbill/internal/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.GetLogger().Fatalw("failed to load configuration", "error", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.GetLogger().Fatalw("failed to initialize logger", "error", err)
	}
	logger.L = log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		log.Fatalw("failed to connect to postgres", "error", err)
	}
	defer pool.Close()

	repos := repository.NewRepositories(pool, log)
	params := service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		LocationRepo: repos.Location,
		ShiftRepo:    repos.Shift,
		PatrolRepo:   repos.Patrol,
		CalloutRepo:  repos.Callout,
		InvoiceRepo:  repos.Invoice,
	}

	router := api.NewRouter(api.NewHandlers(params), cfg, log)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting server", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatalw("server error", "error", err)
	case <-ctx.Done():
		log.Infow("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
	log.Infow("server stopped")
}
