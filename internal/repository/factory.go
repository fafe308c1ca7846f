/*
Package repository wires the pgx-backed repository implementations into the
service layer.
*/
package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/domain/callout"
	"github.com/guardbill/guardbill/internal/domain/invoice"
	"github.com/guardbill/guardbill/internal/domain/location"
	"github.com/guardbill/guardbill/internal/domain/patrol"
	"github.com/guardbill/guardbill/internal/domain/shift"
	"github.com/guardbill/guardbill/internal/logger"
	pgrepo "github.com/guardbill/guardbill/internal/repository/postgres"
)

// Repositories bundles all domain repositories behind one constructor.
type Repositories struct {
	Location location.Repository
	Shift    shift.Repository
	Patrol   patrol.Repository
	Callout  callout.Repository
	Invoice  invoice.Repository
}

// NewRepositories builds the full repository set on a shared pool.
func NewRepositories(pool *pgxpool.Pool, log *logger.Logger) *Repositories {
	return &Repositories{
		Location: pgrepo.NewLocationRepository(pool, log),
		Shift:    pgrepo.NewShiftRepository(pool, log),
		Patrol:   pgrepo.NewPatrolRepository(pool, log),
		Callout:  pgrepo.NewCalloutRepository(pool, log),
		Invoice:  pgrepo.NewInvoiceRepository(pool, log),
	}
}
