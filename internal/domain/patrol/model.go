/*
Package patrol provides the domain model for patrol routes and their log
entries. Billing counts the log entries (checkpoint hits) recorded within the
invoice period; the patrol definitions themselves are not date-scoped.
*/
package patrol

import (
	"context"
	"time"

	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// Patrol represents a recurring patrol route at a location.
type Patrol struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`

	// Name is the display name of the route.
	Name string `json:"name"`

	// CheckpointCount is the number of checkpoints on the route.
	CheckpointCount int `json:"checkpoint_count"`

	types.BaseModel
}

// LogEntry records one completed pass of a patrol route.
type LogEntry struct {
	ID       string `json:"id"`
	PatrolID string `json:"patrol_id"`

	// GuardID identifies the guard who walked the route.
	GuardID string `json:"guard_id,omitempty"`

	// LoggedAt is when the pass was recorded.
	LoggedAt time.Time `json:"logged_at"`

	types.BaseModel
}

// New creates a Patrol with base fields populated from context.
func New(ctx context.Context, locationID, name string) *Patrol {
	return &Patrol{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PATROL),
		LocationID: locationID,
		Name:       name,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

// NewLogEntry creates a LogEntry for a patrol pass.
func NewLogEntry(ctx context.Context, patrolID, guardID string, loggedAt time.Time) *LogEntry {
	return &LogEntry{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PATROL_LOG),
		PatrolID:  patrolID,
		GuardID:   guardID,
		LoggedAt:  loggedAt,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// Validate checks the patrol record.
func (p *Patrol) Validate() error {
	if p.LocationID == "" {
		return ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}
	if p.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Patrol name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Validate checks the log entry.
func (e *LogEntry) Validate() error {
	if e.PatrolID == "" {
		return ierr.NewError("patrol_id is required").
			WithHint("Patrol ID is required").
			Mark(ierr.ErrValidation)
	}
	if e.LoggedAt.IsZero() {
		return ierr.NewError("logged_at is required").
			WithHint("Log timestamp is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
