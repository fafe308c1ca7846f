package testutil

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/guardbill/guardbill/internal/domain/shift"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// InMemoryShiftStore implements shift.Repository
type InMemoryShiftStore struct {
	*InMemoryStore[*shift.Shift]

	// ListCalls counts ListByLocation invocations, for asserting that the
	// aggregation validation gate rejects before any fetch.
	ListCalls atomic.Int64

	// ListErr, when set, is returned by ListByLocation to simulate a
	// backend failure.
	ListErr error
}

// NewInMemoryShiftStore creates a new in-memory shift store
func NewInMemoryShiftStore() *InMemoryShiftStore {
	return &InMemoryShiftStore{
		InMemoryStore: NewInMemoryStore[*shift.Shift](),
	}
}

func copyShift(sh *shift.Shift) *shift.Shift {
	if sh == nil {
		return nil
	}
	copied := *sh
	copied.StatusHistory = append([]shift.StatusEntry(nil), sh.StatusHistory...)
	return &copied
}

func (s *InMemoryShiftStore) Create(ctx context.Context, sh *shift.Shift) (*shift.Shift, error) {
	if sh == nil {
		return nil, ierr.NewError("shift cannot be nil").
			WithHint("Shift cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, sh.ID, copyShift(sh)); err != nil {
		return nil, err
	}
	return copyShift(sh), nil
}

func (s *InMemoryShiftStore) Get(ctx context.Context, id string) (*shift.Shift, error) {
	sh, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("shift not found").
			WithHint("Shift not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyShift(sh), nil
}

func (s *InMemoryShiftStore) ListByLocation(ctx context.Context, locationID string, start, end time.Time) ([]*shift.Shift, error) {
	s.ListCalls.Add(1)
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	matched := s.InMemoryStore.List(ctx, func(_ context.Context, sh *shift.Shift) bool {
		if sh.LocationID != locationID {
			return false
		}
		if !start.IsZero() && sh.ScheduledStart.Before(start) {
			return false
		}
		if !end.IsZero() && sh.ScheduledStart.After(end) {
			return false
		}
		return true
	})

	out := make([]*shift.Shift, 0, len(matched))
	for _, sh := range matched {
		out = append(out, copyShift(sh))
	}
	return out, nil
}

func (s *InMemoryShiftStore) Update(ctx context.Context, sh *shift.Shift) (*shift.Shift, error) {
	if sh == nil {
		return nil, ierr.NewError("shift cannot be nil").
			WithHint("Shift cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, sh.ID, copyShift(sh)); err != nil {
		return nil, err
	}
	return copyShift(sh), nil
}

func (s *InMemoryShiftStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
