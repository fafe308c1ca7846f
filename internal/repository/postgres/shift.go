package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/domain/shift"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/types"
)

type shiftRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewShiftRepository creates a pgx-backed shift repository.
func NewShiftRepository(pool *pgxpool.Pool, log *logger.Logger) shift.Repository {
	return &shiftRepository{pool: pool, log: log}
}

func (r *shiftRepository) Create(ctx context.Context, s *shift.Shift) (*shift.Shift, error) {
	history, err := json.Marshal(s.StatusHistory)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode status history").
			Mark(ierr.ErrInternal)
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO shifts (id, tenant_id, location_id, assigned_worker_count, scheduled_start, scheduled_end,
	clock_in, clock_out, status_history, status, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, s.TenantID, s.LocationID, s.AssignedWorkerCount, s.ScheduledStart, s.ScheduledEnd,
		s.ClockIn, s.ClockOut, history, s.Status, s.CreatedAt, s.UpdatedAt, s.CreatedBy, s.UpdatedBy,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create shift").
			WithReportableDetails(map[string]any{"shift_id": s.ID}).
			Mark(ierr.ErrDatabase)
	}
	return s, nil
}

func (r *shiftRepository) Get(ctx context.Context, id string) (*shift.Shift, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, tenant_id, location_id, assigned_worker_count, scheduled_start, scheduled_end,
	clock_in, clock_out, status_history, status, created_at, updated_at, created_by, updated_by
FROM shifts
WHERE id = $1 AND tenant_id = $2 AND status != $3`,
		id, types.GetTenantID(ctx), types.StatusDeleted,
	)

	s, err := scanShift(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("shift not found").
				WithHint("Shift not found").
				WithReportableDetails(map[string]any{"shift_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithMessage("failed to get shift").
			Mark(ierr.ErrDatabase)
	}
	return s, nil
}

func (r *shiftRepository) ListByLocation(ctx context.Context, locationID string, start, end time.Time) ([]*shift.Shift, error) {
	query := `
SELECT id, tenant_id, location_id, assigned_worker_count, scheduled_start, scheduled_end,
	clock_in, clock_out, status_history, status, created_at, updated_at, created_by, updated_by
FROM shifts
WHERE location_id = $1 AND tenant_id = $2 AND status = $3`
	args := []any{locationID, types.GetTenantID(ctx), types.StatusPublished}

	if !start.IsZero() {
		query += ` AND scheduled_start >= $` + strconv.Itoa(len(args)+1)
		args = append(args, start)
	}
	if !end.IsZero() {
		query += ` AND scheduled_start <= $` + strconv.Itoa(len(args)+1)
		args = append(args, end)
	}
	query += ` ORDER BY scheduled_start`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list shifts").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var shifts []*shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan shift").
				Mark(ierr.ErrDatabase)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list shifts").
			Mark(ierr.ErrDatabase)
	}
	return shifts, nil
}

func (r *shiftRepository) Update(ctx context.Context, s *shift.Shift) (*shift.Shift, error) {
	history, err := json.Marshal(s.StatusHistory)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode status history").
			Mark(ierr.ErrInternal)
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE shifts
SET assigned_worker_count = $1, scheduled_start = $2, scheduled_end = $3,
	clock_in = $4, clock_out = $5, status_history = $6, status = $7, updated_at = $8, updated_by = $9
WHERE id = $10 AND tenant_id = $11 AND status != $12`,
		s.AssignedWorkerCount, s.ScheduledStart, s.ScheduledEnd,
		s.ClockIn, s.ClockOut, history, s.Status, s.UpdatedAt, s.UpdatedBy,
		s.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to update shift").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return nil, ierr.NewError("shift not found").
			WithHint("Shift not found").
			WithReportableDetails(map[string]any{"shift_id": s.ID}).
			Mark(ierr.ErrNotFound)
	}
	return s, nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE shifts SET status = $1 WHERE id = $2 AND tenant_id = $3 AND status != $1`,
		types.StatusDeleted, id, types.GetTenantID(ctx),
	)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to delete shift").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("shift not found").
			WithHint("Shift not found").
			WithReportableDetails(map[string]any{"shift_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanShift(row pgx.Row) (*shift.Shift, error) {
	var s shift.Shift
	var history []byte
	err := row.Scan(
		&s.ID, &s.TenantID, &s.LocationID, &s.AssignedWorkerCount, &s.ScheduledStart, &s.ScheduledEnd,
		&s.ClockIn, &s.ClockOut, &history, &s.Status, &s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &s.StatusHistory); err != nil {
		return nil, err
	}
	return &s, nil
}
