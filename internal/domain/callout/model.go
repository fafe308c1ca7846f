/*
Package callout provides the domain model for alarm callouts: unscheduled
responses to incidents at a location. A callout's status history carries the
response window timestamps billing is computed from.
*/
package callout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// StatusEntry is one entry in a callout's status history. StartedAt and
// EndedAt bound the response window for entries that have one.
type StatusEntry struct {
	Status    types.CalloutStatus `json:"status"`
	StartedAt *time.Time          `json:"started_at,omitempty"`
	EndedAt   *time.Time          `json:"ended_at,omitempty"`
}

// Callout represents an incident response at a location.
type Callout struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`

	// Reason is the free-form incident description.
	Reason string `json:"reason,omitempty"`

	// ReportedAt is when the incident was reported.
	ReportedAt time.Time `json:"reported_at"`

	StatusHistory []StatusEntry `json:"status_history"`

	types.BaseModel
}

// New creates a Callout in the reported state.
func New(ctx context.Context, locationID, reason string, reportedAt time.Time) *Callout {
	return &Callout{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CALLOUT),
		LocationID: locationID,
		Reason:     reason,
		ReportedAt: reportedAt,
		StatusHistory: []StatusEntry{
			{Status: types.CalloutStatusReported},
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// Validate checks the callout record.
func (c *Callout) Validate() error {
	if c.LocationID == "" {
		return ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}
	if c.ReportedAt.IsZero() {
		return ierr.NewError("reported_at is required").
			WithHint("Reported timestamp is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AppendStatus records a status transition with an optional response window.
func (c *Callout) AppendStatus(status types.CalloutStatus, startedAt, endedAt *time.Time) {
	c.StatusHistory = append(c.StatusHistory, StatusEntry{
		Status:    status,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	})
}

// IsBillable reports whether the entry is a completed response with both
// window timestamps present.
func (e StatusEntry) IsBillable() bool {
	return e.Status == types.CalloutStatusCompleted && e.StartedAt != nil && e.EndedAt != nil
}

// BillableEntries returns the status entries billing charges for.
func (c *Callout) BillableEntries() []StatusEntry {
	var entries []StatusEntry
	for _, e := range c.StatusHistory {
		if e.IsBillable() {
			entries = append(entries, e)
		}
	}
	return entries
}

// ElapsedHours returns the billable duration of a status entry in hours,
// computed from the wall-clock (HH:mm) components only. The date component of
// both timestamps is discarded, so an entry spanning midnight yields a
// negative duration. This matches the upstream billing behaviour and is kept
// as-is pending product clarification; do not "fix" it silently.
func (e StatusEntry) ElapsedHours() decimal.Decimal {
	if e.StartedAt == nil || e.EndedAt == nil {
		return decimal.Zero
	}
	startMin := e.StartedAt.Hour()*60 + e.StartedAt.Minute()
	endMin := e.EndedAt.Hour()*60 + e.EndedAt.Minute()
	return decimal.NewFromInt(int64(endMin - startMin)).
		Div(decimal.NewFromInt(60))
}
