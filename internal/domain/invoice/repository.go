package invoice

import "context"

// Repository defines the interface for invoice persistence.
type Repository interface {
	// Create creates a new invoice and returns the created record.
	Create(ctx context.Context, inv *Invoice) (*Invoice, error)

	// Get fetches an invoice by its ID.
	Get(ctx context.Context, id string) (*Invoice, error)

	// ListByLocation returns all published invoices for a location.
	ListByLocation(ctx context.Context, locationID string) ([]*Invoice, error)

	// Update updates an existing invoice, including its line items, and
	// returns the updated record.
	Update(ctx context.Context, inv *Invoice) (*Invoice, error)

	// Delete deletes an invoice by its ID.
	Delete(ctx context.Context, id string) error
}
