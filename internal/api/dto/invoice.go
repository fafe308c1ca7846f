package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guardbill/guardbill/internal/domain/invoice"
	"github.com/guardbill/guardbill/internal/types"
	"github.com/guardbill/guardbill/internal/validator"
)

// CreateInvoiceRequest creates an empty invoice for a location and period.
type CreateInvoiceRequest struct {
	LocationID  string    `json:"location_id" validate:"required"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
	Notes       string    `json:"notes,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// LineItemRequest is a user-edited invoice row. A blank description marks a
// manual row that aggregation reruns will preserve.
type LineItemRequest struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// ToLineItem converts the request row to its domain form.
func (r LineItemRequest) ToLineItem() invoice.LineItem {
	id := r.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM)
	}
	return invoice.LineItem{
		ID:          id,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
		Total:       r.Total,
	}
}

// UpdateInvoiceRequest replaces an invoice's editable fields.
type UpdateInvoiceRequest struct {
	LineItems []LineItemRequest `json:"line_items"`
	Notes     *string           `json:"notes,omitempty"`
}

// RecalculateInvoiceRequest reruns billing aggregation for an invoice and
// merges the result into its line items.
type RecalculateInvoiceRequest struct {
	IncludeShifts   bool `json:"include_shifts"`
	IncludePatrols  bool `json:"include_patrols"`
	IncludeCallouts bool `json:"include_callouts"`
}

// InvoiceResponse is the API shape of an invoice.
type InvoiceResponse struct {
	ID          string             `json:"id"`
	LocationID  string             `json:"location_id"`
	PeriodStart time.Time          `json:"period_start"`
	PeriodEnd   time.Time          `json:"period_end"`
	LineItems   []LineItemResponse `json:"line_items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	Notes       string             `json:"notes,omitempty"`
	Status      types.Status       `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ListInvoicesResponse is the response for listing invoices.
type ListInvoicesResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}

// NewInvoiceResponse converts a domain invoice to its API shape.
func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		items = append(items, NewLineItemResponse(li))
	}
	return &InvoiceResponse{
		ID:          inv.ID,
		LocationID:  inv.LocationID,
		PeriodStart: inv.PeriodStart,
		PeriodEnd:   inv.PeriodEnd,
		LineItems:   items,
		Subtotal:    inv.Subtotal(),
		Notes:       inv.Notes,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}
