/*
Package shift provides the domain model for guard shifts. A shift is a
scheduled block of work at a location with an append-only status history;
billing consumes the completed entries and the margin-adjusted actual hours.
*/
package shift

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// StatusEntry is one entry in a shift's append-only status history.
type StatusEntry struct {
	Status    types.ShiftStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// Shift represents a scheduled block of guard work at a location.
type Shift struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`

	// AssignedWorkerCount is the number of guards assigned to the shift.
	// Zero assigned workers contributes zero billable hours, not an error.
	AssignedWorkerCount int `json:"assigned_worker_count"`

	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`

	// ClockIn/ClockOut are the recorded work boundaries, when present.
	ClockIn  *time.Time `json:"clock_in,omitempty"`
	ClockOut *time.Time `json:"clock_out,omitempty"`

	StatusHistory []StatusEntry `json:"status_history"`

	types.BaseModel
}

// New creates a Shift in the scheduled state.
func New(ctx context.Context, locationID string, workers int, start, end time.Time) *Shift {
	return &Shift{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SHIFT),
		LocationID:          locationID,
		AssignedWorkerCount: workers,
		ScheduledStart:      start,
		ScheduledEnd:        end,
		StatusHistory: []StatusEntry{
			{Status: types.ShiftStatusScheduled, Timestamp: time.Now().UTC()},
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// Validate checks the shift record.
func (s *Shift) Validate() error {
	if s.LocationID == "" {
		return ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}
	if s.AssignedWorkerCount < 0 {
		return ierr.NewError("assigned_worker_count must be non negative").
			WithHint("Assigned worker count must be non negative").
			Mark(ierr.ErrValidation)
	}
	if s.ScheduledEnd.Before(s.ScheduledStart) {
		return ierr.NewError("scheduled_end must be after scheduled_start").
			WithHint("Scheduled end must be after scheduled start").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AppendStatus records a status transition.
func (s *Shift) AppendStatus(status types.ShiftStatus, at time.Time) {
	s.StatusHistory = append(s.StatusHistory, StatusEntry{Status: status, Timestamp: at})
}

// IsBillable reports whether the shift has recorded a completed status entry.
func (s *Shift) IsBillable() bool {
	for _, e := range s.StatusHistory {
		if e.Status == types.ShiftStatusCompleted {
			return true
		}
	}
	return false
}

// ActualHours returns the worked hours for a single guard. Clock boundaries
// within the margin of the scheduled boundary are snapped to the schedule, so
// a guard clocking in a few minutes early is not billed for the overshoot.
// Missing clock times fall back to the scheduled boundary.
func (s *Shift) ActualHours(margin time.Duration) decimal.Decimal {
	start := snapToSchedule(s.ClockIn, s.ScheduledStart, margin)
	end := snapToSchedule(s.ClockOut, s.ScheduledEnd, margin)

	hours := end.Sub(start).Hours()
	if hours < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(hours)
}

func snapToSchedule(recorded *time.Time, scheduled time.Time, margin time.Duration) time.Time {
	if recorded == nil {
		return scheduled
	}
	delta := recorded.Sub(scheduled)
	if delta < 0 {
		delta = -delta
	}
	if delta <= margin {
		return scheduled
	}
	return *recorded
}
