package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardbill/guardbill/internal/domain/invoice"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/types"
)

type invoiceRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewInvoiceRepository creates a pgx-backed invoice repository.
func NewInvoiceRepository(pool *pgxpool.Pool, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{pool: pool, log: log}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode line items").
			Mark(ierr.ErrInternal)
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO invoices (id, tenant_id, location_id, period_start, period_end, line_items, notes, status, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inv.ID, inv.TenantID, inv.LocationID, inv.PeriodStart, inv.PeriodEnd, items, inv.Notes,
		inv.Status, inv.CreatedAt, inv.UpdatedAt, inv.CreatedBy, inv.UpdatedBy,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create invoice").
			WithReportableDetails(map[string]any{"invoice_id": inv.ID}).
			Mark(ierr.ErrDatabase)
	}
	return inv, nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, tenant_id, location_id, period_start, period_end, line_items, notes, status, created_at, updated_at, created_by, updated_by
FROM invoices
WHERE id = $1 AND tenant_id = $2 AND status != $3`,
		id, types.GetTenantID(ctx), types.StatusDeleted,
	)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("invoice not found").
				WithHint("Invoice not found").
				WithReportableDetails(map[string]any{"invoice_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithMessage("failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return inv, nil
}

func (r *invoiceRepository) ListByLocation(ctx context.Context, locationID string) ([]*invoice.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, tenant_id, location_id, period_start, period_end, line_items, notes, status, created_at, updated_at, created_by, updated_by
FROM invoices
WHERE location_id = $1 AND tenant_id = $2 AND status = $3
ORDER BY period_start DESC`,
		locationID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan invoice").
				Mark(ierr.ErrDatabase)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode line items").
			Mark(ierr.ErrInternal)
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE invoices
SET period_start = $1, period_end = $2, line_items = $3, notes = $4, status = $5, updated_at = $6, updated_by = $7
WHERE id = $8 AND tenant_id = $9 AND status != $10`,
		inv.PeriodStart, inv.PeriodEnd, items, inv.Notes, inv.Status, inv.UpdatedAt, inv.UpdatedBy,
		inv.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to update invoice").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]any{"invoice_id": inv.ID}).
			Mark(ierr.ErrNotFound)
	}
	return inv, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE invoices SET status = $1 WHERE id = $2 AND tenant_id = $3 AND status != $1`,
		types.StatusDeleted, id, types.GetTenantID(ctx),
	)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to delete invoice").
			Mark(ierr.ErrDatabase)
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]any{"invoice_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	var items []byte
	err := row.Scan(
		&inv.ID, &inv.TenantID, &inv.LocationID, &inv.PeriodStart, &inv.PeriodEnd, &items, &inv.Notes,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt, &inv.CreatedBy, &inv.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.LineItems); err != nil {
		return nil, err
	}
	return &inv, nil
}
