package types

// BillingCategory identifies one of the independently toggleable cost
// categories an aggregation run can compute.
type BillingCategory string

const (
	BillingCategoryShift   BillingCategory = "shift"
	BillingCategoryPatrol  BillingCategory = "patrol"
	BillingCategoryCallout BillingCategory = "callout"
)

// Line item descriptions written by the aggregator. Rows carrying one of
// these descriptions are replaced on every rerun; blank-description rows are
// user-entered and always preserved.
const (
	LineItemDescriptionShift   = "Shifts Costs"
	LineItemDescriptionPatrol  = "Patrol Costs"
	LineItemDescriptionCallout = "Callout Costs"
)
