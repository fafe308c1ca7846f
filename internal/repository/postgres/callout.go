package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/domain/callout"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/types"
)

type calloutRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewCalloutRepository creates a pgx-backed callout repository.
func NewCalloutRepository(pool *pgxpool.Pool, log *logger.Logger) callout.Repository {
	return &calloutRepository{pool: pool, log: log}
}

func (r *calloutRepository) Create(ctx context.Context, c *callout.Callout) (*callout.Callout, error) {
	history, err := json.Marshal(c.StatusHistory)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode status history").
			Mark(ierr.ErrInternal)
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO callouts (id, tenant_id, location_id, reason, reported_at, status_history, status, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.TenantID, c.LocationID, c.Reason, c.ReportedAt, history,
		c.Status, c.CreatedAt, c.UpdatedAt, c.CreatedBy, c.UpdatedBy,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create callout").
			WithReportableDetails(map[string]any{"callout_id": c.ID}).
			Mark(ierr.ErrDatabase)
	}
	return c, nil
}

func (r *calloutRepository) Get(ctx context.Context, id string) (*callout.Callout, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, tenant_id, location_id, reason, reported_at, status_history, status, created_at, updated_at, created_by, updated_by
FROM callouts
WHERE id = $1 AND tenant_id = $2 AND status != $3`,
		id, types.GetTenantID(ctx), types.StatusDeleted,
	)

	c, err := scanCallout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("callout not found").
				WithHint("Callout not found").
				WithReportableDetails(map[string]any{"callout_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithMessage("failed to get callout").
			Mark(ierr.ErrDatabase)
	}
	return c, nil
}

func (r *calloutRepository) ListByLocation(ctx context.Context, locationID string, start, end time.Time) ([]*callout.Callout, error) {
	query := `
SELECT id, tenant_id, location_id, reason, reported_at, status_history, status, created_at, updated_at, created_by, updated_by
FROM callouts
WHERE location_id = $1 AND tenant_id = $2 AND status = $3`
	args := []any{locationID, types.GetTenantID(ctx), types.StatusPublished}

	if !start.IsZero() {
		query += ` AND reported_at >= $` + strconv.Itoa(len(args)+1)
		args = append(args, start)
	}
	if !end.IsZero() {
		query += ` AND reported_at <= $` + strconv.Itoa(len(args)+1)
		args = append(args, end)
	}
	query += ` ORDER BY reported_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list callouts").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var callouts []*callout.Callout
	for rows.Next() {
		c, err := scanCallout(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan callout").
				Mark(ierr.ErrDatabase)
		}
		callouts = append(callouts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list callouts").
			Mark(ierr.ErrDatabase)
	}
	return callouts, nil
}

func (r *calloutRepository) Update(ctx context.Context, c *callout.Callout) (*callout.Callout, error) {
	history, err := json.Marshal(c.StatusHistory)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode status history").
			Mark(ierr.ErrInternal)
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE callouts
SET reason = $1, reported_at = $2, status_history = $3, status = $4, updated_at = $5, updated_by = $6
WHERE id = $7 AND tenant_id = $8 AND status != $9`,
		c.Reason, c.ReportedAt, history, c.Status, c.UpdatedAt, c.UpdatedBy,
		c.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to update callout").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return nil, ierr.NewError("callout not found").
			WithHint("Callout not found").
			WithReportableDetails(map[string]any{"callout_id": c.ID}).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (r *calloutRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE callouts SET status = $1 WHERE id = $2 AND tenant_id = $3 AND status != $1`,
		types.StatusDeleted, id, types.GetTenantID(ctx),
	)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to delete callout").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("callout not found").
			WithHint("Callout not found").
			WithReportableDetails(map[string]any{"callout_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanCallout(row pgx.Row) (*callout.Callout, error) {
	var c callout.Callout
	var history []byte
	err := row.Scan(
		&c.ID, &c.TenantID, &c.LocationID, &c.Reason, &c.ReportedAt, &history,
		&c.Status, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &c.StatusHistory); err != nil {
		return nil, err
	}
	return &c, nil
}
