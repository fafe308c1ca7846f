package dto

import (
	"time"

	domainCallout "github.com/guardbill/guardbill/internal/domain/callout"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
	"github.com/guardbill/guardbill/internal/validator"
)

// CreateCalloutRequest records a new incident callout at a location.
type CreateCalloutRequest struct {
	LocationID string    `json:"location_id" validate:"required"`
	Reason     string    `json:"reason,omitempty"`
	ReportedAt time.Time `json:"reported_at" validate:"required"`
}

func (r *CreateCalloutRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateCalloutStatusRequest appends a status transition to a callout. The
// response window timestamps are required only for billable completions.
type UpdateCalloutStatusRequest struct {
	Status    types.CalloutStatus `json:"status" validate:"required"`
	StartedAt *time.Time          `json:"started_at,omitempty"`
	EndedAt   *time.Time          `json:"ended_at,omitempty"`
}

func (r *UpdateCalloutStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Status.Validate() {
		return ierr.NewError("invalid callout status").
			WithHint("Unknown callout status").
			WithReportableDetails(map[string]any{"status": r.Status}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ListCalloutsRequest filters callouts by location and reported window.
type ListCalloutsRequest struct {
	LocationID string    `form:"location_id" validate:"required"`
	StartDate  time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate    time.Time `form:"end_date" time_format:"2006-01-02"`
}

// CalloutStatusEntryResponse is the API shape of a callout status entry.
type CalloutStatusEntryResponse struct {
	Status    types.CalloutStatus `json:"status"`
	StartedAt *time.Time          `json:"started_at,omitempty"`
	EndedAt   *time.Time          `json:"ended_at,omitempty"`
}

// CalloutResponse is the API shape of a callout.
type CalloutResponse struct {
	ID            string                       `json:"id"`
	LocationID    string                       `json:"location_id"`
	Reason        string                       `json:"reason,omitempty"`
	ReportedAt    time.Time                    `json:"reported_at"`
	StatusHistory []CalloutStatusEntryResponse `json:"status_history"`
	Status        types.Status                 `json:"status"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

// ListCalloutsResponse is the response for listing callouts.
type ListCalloutsResponse struct {
	Items []CalloutResponse `json:"items"`
	Total int               `json:"total"`
}

// NewCalloutResponse converts a domain callout to its API shape.
func NewCalloutResponse(c *domainCallout.Callout) *CalloutResponse {
	history := make([]CalloutStatusEntryResponse, 0, len(c.StatusHistory))
	for _, e := range c.StatusHistory {
		history = append(history, CalloutStatusEntryResponse{
			Status:    e.Status,
			StartedAt: e.StartedAt,
			EndedAt:   e.EndedAt,
		})
	}
	return &CalloutResponse{
		ID:            c.ID,
		LocationID:    c.LocationID,
		Reason:        c.Reason,
		ReportedAt:    c.ReportedAt,
		StatusHistory: history,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
