package shift

import (
	"context"
	"time"
)

// Repository defines the interface for shift persistence.
type Repository interface {
	// Create creates a new shift and returns the created record.
	Create(ctx context.Context, s *Shift) (*Shift, error)

	// Get fetches a shift by its ID.
	Get(ctx context.Context, id string) (*Shift, error)

	// ListByLocation returns shifts for a location whose scheduled start
	// falls within [start, end].
	ListByLocation(ctx context.Context, locationID string, start, end time.Time) ([]*Shift, error)

	// Update updates an existing shift and returns the updated record.
	Update(ctx context.Context, s *Shift) (*Shift, error)

	// Delete deletes a shift by its ID.
	Delete(ctx context.Context, id string) error
}
