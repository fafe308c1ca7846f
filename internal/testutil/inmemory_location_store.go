package testutil

import (
	"context"

	"github.com/guardbill/guardbill/internal/domain/location"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// InMemoryLocationStore implements location.Repository
type InMemoryLocationStore struct {
	*InMemoryStore[*location.Location]
}

// NewInMemoryLocationStore creates a new in-memory location store
func NewInMemoryLocationStore() *InMemoryLocationStore {
	return &InMemoryLocationStore{
		InMemoryStore: NewInMemoryStore[*location.Location](),
	}
}

func copyLocation(loc *location.Location) *location.Location {
	if loc == nil {
		return nil
	}
	copied := *loc
	return &copied
}

func (s *InMemoryLocationStore) Create(ctx context.Context, loc *location.Location) (*location.Location, error) {
	if loc == nil {
		return nil, ierr.NewError("location cannot be nil").
			WithHint("Location cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, loc.ID, copyLocation(loc)); err != nil {
		return nil, err
	}
	return copyLocation(loc), nil
}

func (s *InMemoryLocationStore) Get(ctx context.Context, id string) (*location.Location, error) {
	loc, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("location not found").
			WithHint("Location not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyLocation(loc), nil
}

func (s *InMemoryLocationStore) List(ctx context.Context) ([]*location.Location, error) {
	tenantID := types.GetTenantID(ctx)
	matched := s.InMemoryStore.List(ctx, func(_ context.Context, loc *location.Location) bool {
		return loc.TenantID == tenantID && loc.Status == types.StatusPublished
	})

	out := make([]*location.Location, 0, len(matched))
	for _, loc := range matched {
		out = append(out, copyLocation(loc))
	}
	return out, nil
}

func (s *InMemoryLocationStore) Update(ctx context.Context, loc *location.Location) (*location.Location, error) {
	if loc == nil {
		return nil, ierr.NewError("location cannot be nil").
			WithHint("Location cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, loc.ID, copyLocation(loc)); err != nil {
		return nil, err
	}
	return copyLocation(loc), nil
}

func (s *InMemoryLocationStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
