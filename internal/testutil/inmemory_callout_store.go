package testutil

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/guardbill/guardbill/internal/domain/callout"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// InMemoryCalloutStore implements callout.Repository
type InMemoryCalloutStore struct {
	*InMemoryStore[*callout.Callout]

	// ListCalls counts ListByLocation invocations, for asserting that the
	// aggregation validation gate rejects before any fetch.
	ListCalls atomic.Int64

	// ListErr, when set, is returned by ListByLocation to simulate a
	// backend failure.
	ListErr error
}

// NewInMemoryCalloutStore creates a new in-memory callout store
func NewInMemoryCalloutStore() *InMemoryCalloutStore {
	return &InMemoryCalloutStore{
		InMemoryStore: NewInMemoryStore[*callout.Callout](),
	}
}

func copyCallout(c *callout.Callout) *callout.Callout {
	if c == nil {
		return nil
	}
	copied := *c
	copied.StatusHistory = append([]callout.StatusEntry(nil), c.StatusHistory...)
	return &copied
}

func (s *InMemoryCalloutStore) Create(ctx context.Context, c *callout.Callout) (*callout.Callout, error) {
	if c == nil {
		return nil, ierr.NewError("callout cannot be nil").
			WithHint("Callout cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, c.ID, copyCallout(c)); err != nil {
		return nil, err
	}
	return copyCallout(c), nil
}

func (s *InMemoryCalloutStore) Get(ctx context.Context, id string) (*callout.Callout, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("callout not found").
			WithHint("Callout not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyCallout(c), nil
}

func (s *InMemoryCalloutStore) ListByLocation(ctx context.Context, locationID string, start, end time.Time) ([]*callout.Callout, error) {
	s.ListCalls.Add(1)
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	matched := s.InMemoryStore.List(ctx, func(_ context.Context, c *callout.Callout) bool {
		if c.LocationID != locationID {
			return false
		}
		if !start.IsZero() && c.ReportedAt.Before(start) {
			return false
		}
		if !end.IsZero() && c.ReportedAt.After(end) {
			return false
		}
		return true
	})

	out := make([]*callout.Callout, 0, len(matched))
	for _, c := range matched {
		out = append(out, copyCallout(c))
	}
	return out, nil
}

func (s *InMemoryCalloutStore) Update(ctx context.Context, c *callout.Callout) (*callout.Callout, error) {
	if c == nil {
		return nil, ierr.NewError("callout cannot be nil").
			WithHint("Callout cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, c.ID, copyCallout(c)); err != nil {
		return nil, err
	}
	return copyCallout(c), nil
}

func (s *InMemoryCalloutStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
