package patrol

import (
	"context"
	"time"
)

// Repository defines the interface for patrol persistence.
type Repository interface {
	// Create creates a new patrol and returns the created record.
	Create(ctx context.Context, p *Patrol) (*Patrol, error)

	// Get fetches a patrol by its ID.
	Get(ctx context.Context, id string) (*Patrol, error)

	// ListByLocation returns all published patrols for a location.
	ListByLocation(ctx context.Context, locationID string) ([]*Patrol, error)

	// Update updates an existing patrol and returns the updated record.
	Update(ctx context.Context, p *Patrol) (*Patrol, error)

	// Delete deletes a patrol by its ID.
	Delete(ctx context.Context, id string) error

	// AddLog records a patrol pass.
	AddLog(ctx context.Context, entry *LogEntry) (*LogEntry, error)

	// CountLogs returns the number of log entries for a patrol whose
	// logged_at falls within [start, end].
	CountLogs(ctx context.Context, patrolID string, start, end time.Time) (int, error)
}
