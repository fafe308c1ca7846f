package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/domain/patrol"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// PatrolService manages patrol routes and their log entries.
type PatrolService interface {
	CreatePatrol(ctx context.Context, req *dto.CreatePatrolRequest) (*dto.PatrolResponse, error)
	GetPatrol(ctx context.Context, id string) (*dto.PatrolResponse, error)
	ListPatrols(ctx context.Context, locationID string) (*dto.ListPatrolsResponse, error)
	DeletePatrol(ctx context.Context, id string) error
	AddPatrolLog(ctx context.Context, patrolID string, req *dto.AddPatrolLogRequest) (*dto.PatrolLogResponse, error)
}

type patrolService struct {
	ServiceParams
}

// NewPatrolService creates a new patrol service.
func NewPatrolService(params ServiceParams) PatrolService {
	return &patrolService{ServiceParams: params}
}

func (s *patrolService) CreatePatrol(ctx context.Context, req *dto.CreatePatrolRequest) (*dto.PatrolResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.LocationRepo.Get(ctx, req.LocationID); err != nil {
		return nil, err
	}

	p := patrol.New(ctx, req.LocationID, req.Name)
	p.CheckpointCount = req.CheckpointCount
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.PatrolRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return dto.NewPatrolResponse(created), nil
}

func (s *patrolService) GetPatrol(ctx context.Context, id string) (*dto.PatrolResponse, error) {
	p, err := s.PatrolRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPatrolResponse(p), nil
}

func (s *patrolService) ListPatrols(ctx context.Context, locationID string) (*dto.ListPatrolsResponse, error) {
	if locationID == "" {
		return nil, ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}

	patrols, err := s.PatrolRepo.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return &dto.ListPatrolsResponse{
		Items: lo.Map(patrols, func(p *patrol.Patrol, _ int) dto.PatrolResponse {
			return *dto.NewPatrolResponse(p)
		}),
		Total: len(patrols),
	}, nil
}

func (s *patrolService) DeletePatrol(ctx context.Context, id string) error {
	return s.PatrolRepo.Delete(ctx, id)
}

func (s *patrolService) AddPatrolLog(ctx context.Context, patrolID string, req *dto.AddPatrolLogRequest) (*dto.PatrolLogResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.PatrolRepo.Get(ctx, patrolID); err != nil {
		return nil, err
	}

	entry := patrol.NewLogEntry(ctx, patrolID, req.GuardID, req.LoggedAt)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	created, err := s.PatrolRepo.AddLog(ctx, entry)
	if err != nil {
		return nil, err
	}
	return dto.NewPatrolLogResponse(created), nil
}
