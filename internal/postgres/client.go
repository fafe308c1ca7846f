/*
Package postgres owns the database connection pool. Repositories receive the
pool through the factory and never open connections themselves.
*/
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/config"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
)

// NewPool opens a pgx connection pool from configuration and verifies
// connectivity before returning it.
func NewPool(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.DSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to parse postgres config").
			Mark(ierr.ErrInternal)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.Postgres.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create postgres pool").
			Mark(ierr.ErrDatabase)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, ierr.WithError(err).
			WithMessage("failed to ping postgres").
			WithHint("Check postgres connection settings").
			Mark(ierr.ErrDatabase)
	}

	log.Infow("connected to postgres",
		"host", cfg.Postgres.Host,
		"database", cfg.Postgres.DBName,
		"max_conns", poolCfg.MaxConns,
	)
	return pool, nil
}
