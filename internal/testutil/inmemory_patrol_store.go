package testutil

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/guardbill/guardbill/internal/domain/patrol"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// InMemoryPatrolStore implements patrol.Repository
type InMemoryPatrolStore struct {
	*InMemoryStore[*patrol.Patrol]

	logs *InMemoryStore[*patrol.LogEntry]

	// ListCalls and CountLogsCalls count fetch invocations, for asserting
	// that the aggregation validation gate rejects before any fetch.
	ListCalls      atomic.Int64
	CountLogsCalls atomic.Int64

	// CountLogsErr, when set, is returned by CountLogs to simulate a
	// backend failure.
	CountLogsErr error
}

// NewInMemoryPatrolStore creates a new in-memory patrol store
func NewInMemoryPatrolStore() *InMemoryPatrolStore {
	return &InMemoryPatrolStore{
		InMemoryStore: NewInMemoryStore[*patrol.Patrol](),
		logs:          NewInMemoryStore[*patrol.LogEntry](),
	}
}

func copyPatrol(p *patrol.Patrol) *patrol.Patrol {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryPatrolStore) Create(ctx context.Context, p *patrol.Patrol) (*patrol.Patrol, error) {
	if p == nil {
		return nil, ierr.NewError("patrol cannot be nil").
			WithHint("Patrol cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, p.ID, copyPatrol(p)); err != nil {
		return nil, err
	}
	return copyPatrol(p), nil
}

func (s *InMemoryPatrolStore) Get(ctx context.Context, id string) (*patrol.Patrol, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("patrol not found").
			WithHint("Patrol not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyPatrol(p), nil
}

func (s *InMemoryPatrolStore) ListByLocation(ctx context.Context, locationID string) ([]*patrol.Patrol, error) {
	s.ListCalls.Add(1)

	matched := s.InMemoryStore.List(ctx, func(_ context.Context, p *patrol.Patrol) bool {
		return p.LocationID == locationID
	})

	out := make([]*patrol.Patrol, 0, len(matched))
	for _, p := range matched {
		out = append(out, copyPatrol(p))
	}
	return out, nil
}

func (s *InMemoryPatrolStore) Update(ctx context.Context, p *patrol.Patrol) (*patrol.Patrol, error) {
	if p == nil {
		return nil, ierr.NewError("patrol cannot be nil").
			WithHint("Patrol cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, p.ID, copyPatrol(p)); err != nil {
		return nil, err
	}
	return copyPatrol(p), nil
}

func (s *InMemoryPatrolStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryPatrolStore) AddLog(ctx context.Context, entry *patrol.LogEntry) (*patrol.LogEntry, error) {
	if entry == nil {
		return nil, ierr.NewError("log entry cannot be nil").
			WithHint("Log entry cannot be nil").
			Mark(ierr.ErrValidation)
	}
	copied := *entry
	if err := s.logs.Create(ctx, entry.ID, &copied); err != nil {
		return nil, err
	}
	out := *entry
	return &out, nil
}

func (s *InMemoryPatrolStore) CountLogs(ctx context.Context, patrolID string, start, end time.Time) (int, error) {
	s.CountLogsCalls.Add(1)
	if s.CountLogsErr != nil {
		return 0, s.CountLogsErr
	}

	matched := s.logs.List(ctx, func(_ context.Context, e *patrol.LogEntry) bool {
		if e.PatrolID != patrolID {
			return false
		}
		if !start.IsZero() && e.LoggedAt.Before(start) {
			return false
		}
		if !end.IsZero() && e.LoggedAt.After(end) {
			return false
		}
		return true
	})
	return len(matched), nil
}
