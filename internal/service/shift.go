package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/domain/shift"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// ShiftService manages guard shifts.
type ShiftService interface {
	CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (*dto.ShiftResponse, error)
	ListShifts(ctx context.Context, req *dto.ListShiftsRequest) (*dto.ListShiftsResponse, error)
	UpdateShiftStatus(ctx context.Context, id string, req *dto.UpdateShiftStatusRequest) (*dto.ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error
}

type shiftService struct {
	ServiceParams
}

// NewShiftService creates a new shift service.
func NewShiftService(params ServiceParams) ShiftService {
	return &shiftService{ServiceParams: params}
}

func (s *shiftService) CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.LocationRepo.Get(ctx, req.LocationID); err != nil {
		return nil, err
	}

	sh := shift.New(ctx, req.LocationID, req.AssignedWorkerCount, req.ScheduledStart, req.ScheduledEnd)
	if err := sh.Validate(); err != nil {
		return nil, err
	}

	created, err := s.ShiftRepo.Create(ctx, sh)
	if err != nil {
		return nil, err
	}
	return dto.NewShiftResponse(created), nil
}

func (s *shiftService) GetShift(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	sh, err := s.ShiftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewShiftResponse(sh), nil
}

func (s *shiftService) ListShifts(ctx context.Context, req *dto.ListShiftsRequest) (*dto.ListShiftsResponse, error) {
	if req.LocationID == "" {
		return nil, ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}

	shifts, err := s.ShiftRepo.ListByLocation(ctx, req.LocationID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	return &dto.ListShiftsResponse{
		Items: lo.Map(shifts, func(sh *shift.Shift, _ int) dto.ShiftResponse {
			return *dto.NewShiftResponse(sh)
		}),
		Total: len(shifts),
	}, nil
}

func (s *shiftService) UpdateShiftStatus(ctx context.Context, id string, req *dto.UpdateShiftStatusRequest) (*dto.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sh, err := s.ShiftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	at := req.Timestamp
	if at.IsZero() {
		at = time.Now().UTC()
	}
	sh.AppendStatus(req.Status, at)
	if req.ClockIn != nil {
		sh.ClockIn = req.ClockIn
	}
	if req.ClockOut != nil {
		sh.ClockOut = req.ClockOut
	}

	updated, err := s.ShiftRepo.Update(ctx, sh)
	if err != nil {
		return nil, err
	}
	return dto.NewShiftResponse(updated), nil
}

func (s *shiftService) DeleteShift(ctx context.Context, id string) error {
	return s.ShiftRepo.Delete(ctx, id)
}
