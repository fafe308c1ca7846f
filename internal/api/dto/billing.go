package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guardbill/guardbill/internal/domain/invoice"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/validator"
)

// RunAggregationRequest asks billing to compute cost line items for a
// location over a billing period. At least one category must be selected.
type RunAggregationRequest struct {
	// LocationID identifies the site whose rate configuration is used.
	LocationID string `json:"location_id" validate:"required"`

	// PeriodStart / PeriodEnd bound the billing period (inclusive).
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`

	// Category toggles. Each selected category is computed independently.
	IncludeShifts   bool `json:"include_shifts"`
	IncludePatrols  bool `json:"include_patrols"`
	IncludeCallouts bool `json:"include_callouts"`
}

// Validate applies the aggregation precondition gate. It runs before any
// record is fetched; a violation aborts the whole run.
func (r *RunAggregationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PeriodStart.IsZero() || r.PeriodEnd.IsZero() {
		return ierr.NewError("billing period is required").
			WithHint("Both period start and end dates are required").
			Mark(ierr.ErrValidation)
	}
	if !r.IncludeShifts && !r.IncludePatrols && !r.IncludeCallouts {
		return ierr.NewError("no billing category selected").
			WithHint("Select at least one of shifts, patrols or callouts").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LineItemResponse is the API shape of an invoice line item.
type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// AggregationResponse carries the computed line items of one aggregation run.
type AggregationResponse struct {
	Items []LineItemResponse `json:"items"`
}

// NewLineItemResponse converts a domain line item to its API shape.
func NewLineItemResponse(li invoice.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		Description: li.Description,
		UnitPrice:   li.UnitPrice,
		Quantity:    li.Quantity,
		Total:       li.Total,
	}
}

// NewAggregationResponse converts computed line items to the API shape.
func NewAggregationResponse(items []invoice.LineItem) *AggregationResponse {
	resp := &AggregationResponse{Items: make([]LineItemResponse, 0, len(items))}
	for _, li := range items {
		resp.Items = append(resp.Items, NewLineItemResponse(li))
	}
	return resp
}
