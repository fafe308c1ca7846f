package location

import "context"

// Repository defines the interface for location persistence.
type Repository interface {
	// Create creates a new location and returns the created record.
	Create(ctx context.Context, loc *Location) (*Location, error)

	// Get fetches a location by its ID.
	Get(ctx context.Context, id string) (*Location, error)

	// List returns all published locations for the tenant.
	List(ctx context.Context) ([]*Location, error)

	// Update updates an existing location and returns the updated record.
	Update(ctx context.Context, loc *Location) (*Location, error)

	// Delete deletes a location by its ID.
	Delete(ctx context.Context, id string) error
}
