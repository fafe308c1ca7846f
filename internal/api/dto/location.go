package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guardbill/guardbill/internal/domain/location"
	"github.com/guardbill/guardbill/internal/types"
	"github.com/guardbill/guardbill/internal/validator"
)

// RateConfigRequest carries the billing rates for a location.
type RateConfigRequest struct {
	ShiftHourlyRate       decimal.Decimal `json:"shift_hourly_rate"`
	PatrolPerHitRate      decimal.Decimal `json:"patrol_per_hit_rate"`
	CalloutInitialMinutes int             `json:"callout_initial_minutes"`
	CalloutInitialCost    decimal.Decimal `json:"callout_initial_cost"`
	CalloutPerHourRate    decimal.Decimal `json:"callout_per_hour_rate"`
}

// ToRateConfig converts the request to its domain form.
func (r RateConfigRequest) ToRateConfig() location.RateConfig {
	return location.RateConfig{
		ShiftHourlyRate:       r.ShiftHourlyRate,
		PatrolPerHitRate:      r.PatrolPerHitRate,
		CalloutInitialMinutes: r.CalloutInitialMinutes,
		CalloutInitialCost:    r.CalloutInitialCost,
		CalloutPerHourRate:    r.CalloutPerHourRate,
	}
}

// CreateLocationRequest creates a new client site.
type CreateLocationRequest struct {
	Name    string            `json:"name" validate:"required"`
	Address string            `json:"address,omitempty"`
	Rates   RateConfigRequest `json:"rates"`
}

func (r *CreateLocationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Rates.ToRateConfig().Validate()
}

// UpdateLocationRequest updates a client site.
type UpdateLocationRequest struct {
	Name    *string            `json:"name,omitempty"`
	Address *string            `json:"address,omitempty"`
	Rates   *RateConfigRequest `json:"rates,omitempty"`
}

// LocationResponse is the API shape of a location.
type LocationResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Address   string              `json:"address,omitempty"`
	Rates     location.RateConfig `json:"rates"`
	Status    types.Status        `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ListLocationsResponse is the response for listing locations.
type ListLocationsResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}

// NewLocationResponse converts a domain location to its API shape.
func NewLocationResponse(loc *location.Location) *LocationResponse {
	return &LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		Address:   loc.Address,
		Rates:     loc.Rates,
		Status:    loc.Status,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}
