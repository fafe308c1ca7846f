package types

import "github.com/shopspring/decimal"

// BillablePrecision is the number of decimal places every value written onto
// an invoice line item is rounded to.
const BillablePrecision int32 = 2

// RoundBillable applies the shared billing rounding rule: round half up to
// BillablePrecision decimal places. It is applied only when a value is
// emitted onto a line item, never to intermediate accumulations.
func RoundBillable(d decimal.Decimal) decimal.Decimal {
	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts billing produces.
	return d.Round(BillablePrecision)
}
