/*
Package invoice provides the domain model for client invoices. An invoice
collects line items for a location over a billing period; the billing
aggregator computes rows that are merged in via MergeLineItems.
*/
package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// Invoice represents a client invoice for a location and billing period.
type Invoice struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`

	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	// LineItems is the ordered list of rows on the invoice, both
	// aggregator-produced and user-entered.
	LineItems []LineItem `json:"line_items"`

	// Notes is free-form text shown on the rendered invoice.
	Notes string `json:"notes,omitempty"`

	types.BaseModel
}

// New creates an Invoice for a location and period.
func New(ctx context.Context, locationID string, periodStart, periodEnd time.Time) *Invoice {
	return &Invoice{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		LocationID:  locationID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// Validate validates the invoice.
func (inv *Invoice) Validate() error {
	if inv.LocationID == "" {
		return ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}
	if inv.PeriodStart.IsZero() || inv.PeriodEnd.IsZero() {
		return ierr.NewError("billing period is required").
			WithHint("Both period start and end dates are required").
			Mark(ierr.ErrValidation)
	}
	if inv.PeriodEnd.Before(inv.PeriodStart) {
		return ierr.NewError("period_end must be after period_start").
			WithHint("Period end must be after period start").
			Mark(ierr.ErrValidation)
	}
	for _, li := range inv.LineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Subtotal sums the authoritative totals of all line items.
func (inv *Invoice) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, li := range inv.LineItems {
		subtotal = subtotal.Add(li.Total)
	}
	return subtotal
}
