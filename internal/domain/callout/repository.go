package callout

import (
	"context"
	"time"
)

// Repository defines the interface for callout persistence.
type Repository interface {
	// Create creates a new callout and returns the created record.
	Create(ctx context.Context, c *Callout) (*Callout, error)

	// Get fetches a callout by its ID.
	Get(ctx context.Context, id string) (*Callout, error)

	// ListByLocation returns callouts for a location whose reported_at falls
	// within [start, end].
	ListByLocation(ctx context.Context, locationID string, start, end time.Time) ([]*Callout, error)

	// Update updates an existing callout and returns the updated record.
	Update(ctx context.Context, c *Callout) (*Callout, error)

	// Delete deletes a callout by its ID.
	Delete(ctx context.Context, id string) error
}
