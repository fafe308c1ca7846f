/*
Package location provides the domain model for client sites. Every activity
record (shift, patrol, callout) is attributed to a location, and each location
carries the rate configuration billing uses to turn activity into money.
*/
package location

import (
	"context"

	"github.com/shopspring/decimal"

	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// RateConfig holds the per-location billing rates. It is owned by the
// location record and read-only to the billing aggregator.
type RateConfig struct {
	// ShiftHourlyRate is charged per billable guard-hour.
	ShiftHourlyRate decimal.Decimal `json:"shift_hourly_rate"`

	// PatrolPerHitRate is charged per checkpoint hit logged in the period.
	PatrolPerHitRate decimal.Decimal `json:"patrol_per_hit_rate"`

	// CalloutInitialMinutes is the response window covered by the flat
	// initial callout cost.
	CalloutInitialMinutes int `json:"callout_initial_minutes"`

	// CalloutInitialCost is the flat cost applied when a callout runs past
	// the initial window.
	CalloutInitialCost decimal.Decimal `json:"callout_initial_cost"`

	// CalloutPerHourRate is charged per callout hour.
	CalloutPerHourRate decimal.Decimal `json:"callout_per_hour_rate"`
}

// Validate checks that no rate is negative.
func (rc RateConfig) Validate() error {
	if rc.ShiftHourlyRate.IsNegative() {
		return ierr.NewError("shift_hourly_rate must be non negative").
			WithHint("Shift hourly rate must be non negative").
			Mark(ierr.ErrValidation)
	}
	if rc.PatrolPerHitRate.IsNegative() {
		return ierr.NewError("patrol_per_hit_rate must be non negative").
			WithHint("Patrol per-hit rate must be non negative").
			Mark(ierr.ErrValidation)
	}
	if rc.CalloutInitialMinutes < 0 {
		return ierr.NewError("callout_initial_minutes must be non negative").
			WithHint("Callout initial minutes must be non negative").
			Mark(ierr.ErrValidation)
	}
	if rc.CalloutInitialCost.IsNegative() {
		return ierr.NewError("callout_initial_cost must be non negative").
			WithHint("Callout initial cost must be non negative").
			Mark(ierr.ErrValidation)
	}
	if rc.CalloutPerHourRate.IsNegative() {
		return ierr.NewError("callout_per_hour_rate must be non negative").
			WithHint("Callout per-hour rate must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Location represents a client site.
type Location struct {
	ID string `json:"id"`

	// Name is the display name of the site.
	Name string `json:"name"`

	// Address is the free-form site address.
	Address string `json:"address,omitempty"`

	// Rates is the billing rate configuration for this site.
	Rates RateConfig `json:"rates"`

	types.BaseModel
}

// New creates a Location with base fields populated from context.
func New(ctx context.Context, name string, rates RateConfig) *Location {
	return &Location{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LOCATION),
		Name:      name,
		Rates:     rates,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// Validate checks the location record.
func (l *Location) Validate() error {
	if l.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Location name is required").
			Mark(ierr.ErrValidation)
	}
	return l.Rates.Validate()
}
