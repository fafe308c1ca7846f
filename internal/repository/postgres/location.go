/*
Package postgres implements the domain repositories on top of pgx. Flexible
sub-documents (rate configs, status histories, line items) are stored as JSONB;
everything queried or filtered on gets its own column.
*/
package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/domain/location"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/types"
)

type locationRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewLocationRepository creates a pgx-backed location repository.
func NewLocationRepository(pool *pgxpool.Pool, log *logger.Logger) location.Repository {
	return &locationRepository{pool: pool, log: log}
}

func (r *locationRepository) Create(ctx context.Context, loc *location.Location) (*location.Location, error) {
	rates, err := json.Marshal(loc.Rates)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode rate config").
			Mark(ierr.ErrInternal)
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO locations (id, tenant_id, name, address, rates, status, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		loc.ID, loc.TenantID, loc.Name, loc.Address, rates,
		loc.Status, loc.CreatedAt, loc.UpdatedAt, loc.CreatedBy, loc.UpdatedBy,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create location").
			WithReportableDetails(map[string]any{"location_id": loc.ID}).
			Mark(ierr.ErrDatabase)
	}
	return loc, nil
}

func (r *locationRepository) Get(ctx context.Context, id string) (*location.Location, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, tenant_id, name, address, rates, status, created_at, updated_at, created_by, updated_by
FROM locations
WHERE id = $1 AND tenant_id = $2 AND status != $3`,
		id, types.GetTenantID(ctx), types.StatusDeleted,
	)

	loc, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("location not found").
				WithHint("Location not found").
				WithReportableDetails(map[string]any{"location_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithMessage("failed to get location").
			Mark(ierr.ErrDatabase)
	}
	return loc, nil
}

func (r *locationRepository) List(ctx context.Context) ([]*location.Location, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, tenant_id, name, address, rates, status, created_at, updated_at, created_by, updated_by
FROM locations
WHERE tenant_id = $1 AND status = $2
ORDER BY created_at`,
		types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list locations").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var locations []*location.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan location").
				Mark(ierr.ErrDatabase)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list locations").
			Mark(ierr.ErrDatabase)
	}
	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, loc *location.Location) (*location.Location, error) {
	rates, err := json.Marshal(loc.Rates)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode rate config").
			Mark(ierr.ErrInternal)
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE locations
SET name = $1, address = $2, rates = $3, status = $4, updated_at = $5, updated_by = $6
WHERE id = $7 AND tenant_id = $8 AND status != $9`,
		loc.Name, loc.Address, rates, loc.Status, loc.UpdatedAt, loc.UpdatedBy,
		loc.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to update location").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return nil, ierr.NewError("location not found").
			WithHint("Location not found").
			WithReportableDetails(map[string]any{"location_id": loc.ID}).
			Mark(ierr.ErrNotFound)
	}
	return loc, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE locations SET status = $1 WHERE id = $2 AND tenant_id = $3 AND status != $1`,
		types.StatusDeleted, id, types.GetTenantID(ctx),
	)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to delete location").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("location not found").
			WithHint("Location not found").
			WithReportableDetails(map[string]any{"location_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanLocation(row pgx.Row) (*location.Location, error) {
	var loc location.Location
	var rates []byte
	err := row.Scan(
		&loc.ID, &loc.TenantID, &loc.Name, &loc.Address, &rates,
		&loc.Status, &loc.CreatedAt, &loc.UpdatedAt, &loc.CreatedBy, &loc.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rates, &loc.Rates); err != nil {
		return nil, err
	}
	return &loc, nil
}
