package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/domain/callout"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// CalloutService manages incident callouts.
type CalloutService interface {
	CreateCallout(ctx context.Context, req *dto.CreateCalloutRequest) (*dto.CalloutResponse, error)
	GetCallout(ctx context.Context, id string) (*dto.CalloutResponse, error)
	ListCallouts(ctx context.Context, req *dto.ListCalloutsRequest) (*dto.ListCalloutsResponse, error)
	UpdateCalloutStatus(ctx context.Context, id string, req *dto.UpdateCalloutStatusRequest) (*dto.CalloutResponse, error)
	DeleteCallout(ctx context.Context, id string) error
}

type calloutService struct {
	ServiceParams
}

// NewCalloutService creates a new callout service.
func NewCalloutService(params ServiceParams) CalloutService {
	return &calloutService{ServiceParams: params}
}

func (s *calloutService) CreateCallout(ctx context.Context, req *dto.CreateCalloutRequest) (*dto.CalloutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.LocationRepo.Get(ctx, req.LocationID); err != nil {
		return nil, err
	}

	c := callout.New(ctx, req.LocationID, req.Reason, req.ReportedAt)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.CalloutRepo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return dto.NewCalloutResponse(created), nil
}

func (s *calloutService) GetCallout(ctx context.Context, id string) (*dto.CalloutResponse, error) {
	c, err := s.CalloutRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCalloutResponse(c), nil
}

func (s *calloutService) ListCallouts(ctx context.Context, req *dto.ListCalloutsRequest) (*dto.ListCalloutsResponse, error) {
	if req.LocationID == "" {
		return nil, ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}

	callouts, err := s.CalloutRepo.ListByLocation(ctx, req.LocationID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	return &dto.ListCalloutsResponse{
		Items: lo.Map(callouts, func(c *callout.Callout, _ int) dto.CalloutResponse {
			return *dto.NewCalloutResponse(c)
		}),
		Total: len(callouts),
	}, nil
}

func (s *calloutService) UpdateCalloutStatus(ctx context.Context, id string, req *dto.UpdateCalloutStatusRequest) (*dto.CalloutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CalloutRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.AppendStatus(req.Status, req.StartedAt, req.EndedAt)

	updated, err := s.CalloutRepo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return dto.NewCalloutResponse(updated), nil
}

func (s *calloutService) DeleteCallout(ctx context.Context, id string) error {
	return s.CalloutRepo.Delete(ctx, id)
}
