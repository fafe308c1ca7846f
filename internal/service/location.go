package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/domain/location"
)

// LocationService manages client sites and their rate configurations.
type LocationService interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error)
	ListLocations(ctx context.Context) (*dto.ListLocationsResponse, error)
	UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	DeleteLocation(ctx context.Context, id string) error
}

type locationService struct {
	ServiceParams
}

// NewLocationService creates a new location service.
func NewLocationService(params ServiceParams) LocationService {
	return &locationService{ServiceParams: params}
}

func (s *locationService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loc := location.New(ctx, req.Name, req.Rates.ToRateConfig())
	loc.Address = req.Address

	created, err := s.LocationRepo.Create(ctx, loc)
	if err != nil {
		return nil, err
	}
	return dto.NewLocationResponse(created), nil
}

func (s *locationService) GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.LocationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewLocationResponse(loc), nil
}

func (s *locationService) ListLocations(ctx context.Context) (*dto.ListLocationsResponse, error) {
	locations, err := s.LocationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListLocationsResponse{
		Items: lo.Map(locations, func(loc *location.Location, _ int) dto.LocationResponse {
			return *dto.NewLocationResponse(loc)
		}),
		Total: len(locations),
	}, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := s.LocationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.Rates != nil {
		loc.Rates = req.Rates.ToRateConfig()
	}

	if err := loc.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.LocationRepo.Update(ctx, loc)
	if err != nil {
		return nil, err
	}
	return dto.NewLocationResponse(updated), nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id string) error {
	return s.LocationRepo.Delete(ctx, id)
}
