package invoice

import (
	"github.com/shopspring/decimal"

	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// LineItem represents a single line item on an invoice.
//
// Total is authoritative. For shift and patrol lines it equals
// unit_price * quantity after rounding; for callout lines the cost is
// accumulated additively per status entry, so unit_price and quantity are
// informational only.
type LineItem struct {
	ID string `json:"id"`

	// Description identifies the line. Rows written by the billing
	// aggregator carry one of the well-known descriptions; blank rows are
	// user-entered and never touched by aggregation.
	Description string `json:"description"`

	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// NewComputedLineItem builds an aggregator-produced line item, applying the
// shared billing rounding to every emitted field.
func NewComputedLineItem(description string, unitPrice, quantity, total decimal.Decimal) LineItem {
	return LineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
		Description: description,
		UnitPrice:   types.RoundBillable(unitPrice),
		Quantity:    types.RoundBillable(quantity),
		Total:       types.RoundBillable(total),
	}
}

// IsManual reports whether the row was entered by a user rather than
// produced by aggregation.
func (li LineItem) IsManual() bool {
	return li.Description == ""
}

// Validate validates the line item.
func (li LineItem) Validate() error {
	if li.Quantity.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("quantity must be non negative").
			Mark(ierr.ErrValidation)
	}
	if li.UnitPrice.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("unit_price must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// MergeLineItems merges freshly computed aggregator rows into an existing
// line-item list: previously computed rows (non-blank description) are
// dropped, manual rows are preserved in place, and the computed rows are
// appended. The inputs are not mutated, so a failed aggregation run leaves
// the caller's invoice untouched.
func MergeLineItems(existing, computed []LineItem) []LineItem {
	merged := make([]LineItem, 0, len(existing)+len(computed))
	for _, li := range existing {
		if li.IsManual() {
			merged = append(merged, li)
		}
	}
	return append(merged, computed...)
}
