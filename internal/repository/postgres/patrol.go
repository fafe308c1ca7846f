package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/domain/patrol"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/types"
)

type patrolRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewPatrolRepository creates a pgx-backed patrol repository.
func NewPatrolRepository(pool *pgxpool.Pool, log *logger.Logger) patrol.Repository {
	return &patrolRepository{pool: pool, log: log}
}

func (r *patrolRepository) Create(ctx context.Context, p *patrol.Patrol) (*patrol.Patrol, error) {
	_, err := r.pool.Exec(ctx, `
INSERT INTO patrols (id, tenant_id, location_id, name, checkpoint_count, status, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.TenantID, p.LocationID, p.Name, p.CheckpointCount,
		p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create patrol").
			WithReportableDetails(map[string]any{"patrol_id": p.ID}).
			Mark(ierr.ErrDatabase)
	}
	return p, nil
}

func (r *patrolRepository) Get(ctx context.Context, id string) (*patrol.Patrol, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, tenant_id, location_id, name, checkpoint_count, status, created_at, updated_at, created_by, updated_by
FROM patrols
WHERE id = $1 AND tenant_id = $2 AND status != $3`,
		id, types.GetTenantID(ctx), types.StatusDeleted,
	)

	p, err := scanPatrol(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("patrol not found").
				WithHint("Patrol not found").
				WithReportableDetails(map[string]any{"patrol_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithMessage("failed to get patrol").
			Mark(ierr.ErrDatabase)
	}
	return p, nil
}

func (r *patrolRepository) ListByLocation(ctx context.Context, locationID string) ([]*patrol.Patrol, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, tenant_id, location_id, name, checkpoint_count, status, created_at, updated_at, created_by, updated_by
FROM patrols
WHERE location_id = $1 AND tenant_id = $2 AND status = $3
ORDER BY created_at`,
		locationID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list patrols").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var patrols []*patrol.Patrol
	for rows.Next() {
		p, err := scanPatrol(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan patrol").
				Mark(ierr.ErrDatabase)
		}
		patrols = append(patrols, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list patrols").
			Mark(ierr.ErrDatabase)
	}
	return patrols, nil
}

func (r *patrolRepository) Update(ctx context.Context, p *patrol.Patrol) (*patrol.Patrol, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE patrols
SET name = $1, checkpoint_count = $2, status = $3, updated_at = $4, updated_by = $5
WHERE id = $6 AND tenant_id = $7 AND status != $8`,
		p.Name, p.CheckpointCount, p.Status, p.UpdatedAt, p.UpdatedBy,
		p.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to update patrol").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return nil, ierr.NewError("patrol not found").
			WithHint("Patrol not found").
			WithReportableDetails(map[string]any{"patrol_id": p.ID}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (r *patrolRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE patrols SET status = $1 WHERE id = $2 AND tenant_id = $3 AND status != $1`,
		types.StatusDeleted, id, types.GetTenantID(ctx),
	)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to delete patrol").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("patrol not found").
			WithHint("Patrol not found").
			WithReportableDetails(map[string]any{"patrol_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *patrolRepository) AddLog(ctx context.Context, entry *patrol.LogEntry) (*patrol.LogEntry, error) {
	_, err := r.pool.Exec(ctx, `
INSERT INTO patrol_logs (id, tenant_id, patrol_id, guard_id, logged_at, status, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID, entry.TenantID, entry.PatrolID, entry.GuardID, entry.LoggedAt,
		entry.Status, entry.CreatedAt, entry.UpdatedAt, entry.CreatedBy, entry.UpdatedBy,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to add patrol log").
			WithReportableDetails(map[string]any{"patrol_id": entry.PatrolID}).
			Mark(ierr.ErrDatabase)
	}
	return entry, nil
}

func (r *patrolRepository) CountLogs(ctx context.Context, patrolID string, start, end time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM patrol_logs
WHERE patrol_id = $1 AND tenant_id = $2 AND status = $3
	AND logged_at >= $4 AND logged_at <= $5`,
		patrolID, types.GetTenantID(ctx), types.StatusPublished, start, end,
	).Scan(&count)
	if err != nil {
		return 0, ierr.WithError(err).
			WithMessage("failed to count patrol logs").
			WithReportableDetails(map[string]any{"patrol_id": patrolID}).
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func scanPatrol(row pgx.Row) (*patrol.Patrol, error) {
	var p patrol.Patrol
	err := row.Scan(
		&p.ID, &p.TenantID, &p.LocationID, &p.Name, &p.CheckpointCount,
		&p.Status, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
