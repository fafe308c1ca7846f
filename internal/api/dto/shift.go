package dto

import (
	"time"

	domainShift "github.com/guardbill/guardbill/internal/domain/shift"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
	"github.com/guardbill/guardbill/internal/validator"
)

// CreateShiftRequest schedules a new shift at a location.
type CreateShiftRequest struct {
	LocationID          string    `json:"location_id" validate:"required"`
	AssignedWorkerCount int       `json:"assigned_worker_count" validate:"gte=0"`
	ScheduledStart      time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd        time.Time `json:"scheduled_end" validate:"required"`
}

func (r *CreateShiftRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateShiftStatusRequest appends a status transition to a shift, optionally
// recording clock boundaries.
type UpdateShiftStatusRequest struct {
	Status    types.ShiftStatus `json:"status" validate:"required"`
	Timestamp time.Time         `json:"timestamp"`
	ClockIn   *time.Time        `json:"clock_in,omitempty"`
	ClockOut  *time.Time        `json:"clock_out,omitempty"`
}

func (r *UpdateShiftStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Status.Validate() {
		return ierr.NewError("invalid shift status").
			WithHint("Unknown shift status").
			WithReportableDetails(map[string]any{"status": r.Status}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ListShiftsRequest filters shifts by location and scheduled window.
type ListShiftsRequest struct {
	LocationID string    `form:"location_id" validate:"required"`
	StartDate  time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate    time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ShiftStatusEntryResponse is the API shape of a shift status entry.
type ShiftStatusEntryResponse struct {
	Status    types.ShiftStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// ShiftResponse is the API shape of a shift.
type ShiftResponse struct {
	ID                  string                     `json:"id"`
	LocationID          string                     `json:"location_id"`
	AssignedWorkerCount int                        `json:"assigned_worker_count"`
	ScheduledStart      time.Time                  `json:"scheduled_start"`
	ScheduledEnd        time.Time                  `json:"scheduled_end"`
	ClockIn             *time.Time                 `json:"clock_in,omitempty"`
	ClockOut            *time.Time                 `json:"clock_out,omitempty"`
	StatusHistory       []ShiftStatusEntryResponse `json:"status_history"`
	Status              types.Status               `json:"status"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// ListShiftsResponse is the response for listing shifts.
type ListShiftsResponse struct {
	Items []ShiftResponse `json:"items"`
	Total int             `json:"total"`
}

// NewShiftResponse converts a domain shift to its API shape.
func NewShiftResponse(s *domainShift.Shift) *ShiftResponse {
	history := make([]ShiftStatusEntryResponse, 0, len(s.StatusHistory))
	for _, e := range s.StatusHistory {
		history = append(history, ShiftStatusEntryResponse{Status: e.Status, Timestamp: e.Timestamp})
	}
	return &ShiftResponse{
		ID:                  s.ID,
		LocationID:          s.LocationID,
		AssignedWorkerCount: s.AssignedWorkerCount,
		ScheduledStart:      s.ScheduledStart,
		ScheduledEnd:        s.ScheduledEnd,
		ClockIn:             s.ClockIn,
		ClockOut:            s.ClockOut,
		StatusHistory:       history,
		Status:              s.Status,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
