package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/domain/invoice"
	ierr "github.com/guardbill/guardbill/internal/errors"
)

// InvoiceService manages client invoices and applies billing aggregation
// results to them.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, locationID string) (*dto.ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error

	// Recalculate runs billing aggregation for the invoice's location and
	// period and merges the computed rows into its line items. Previously
	// computed rows are replaced; manual blank-description rows are kept.
	// Nothing is persisted unless the whole aggregation succeeds.
	Recalculate(ctx context.Context, id string, req *dto.RecalculateInvoiceRequest) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	ServiceParams
	billing BillingService
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(params ServiceParams, billing BillingService) InvoiceService {
	return &invoiceService{ServiceParams: params, billing: billing}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The location must exist before an invoice can reference it.
	if _, err := s.LocationRepo.Get(ctx, req.LocationID); err != nil {
		return nil, err
	}

	inv := invoice.New(ctx, req.LocationID, req.PeriodStart, req.PeriodEnd)
	inv.Notes = req.Notes
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	created, err := s.InvoiceRepo.Create(ctx, inv)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(created), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, locationID string) (*dto.ListInvoicesResponse, error) {
	if locationID == "" {
		return nil, ierr.NewError("location_id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation)
	}

	invoices, err := s.InvoiceRepo.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return &dto.ListInvoicesResponse{
		Items: lo.Map(invoices, func(inv *invoice.Invoice, _ int) dto.InvoiceResponse {
			return *dto.NewInvoiceResponse(inv)
		}),
		Total: len(invoices),
	}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LineItems != nil {
		items := make([]invoice.LineItem, 0, len(req.LineItems))
		for _, li := range req.LineItems {
			items = append(items, li.ToLineItem())
		}
		inv.LineItems = items
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.InvoiceRepo.Update(ctx, inv)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(updated), nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	return s.InvoiceRepo.Delete(ctx, id)
}

func (s *invoiceService) Recalculate(ctx context.Context, id string, req *dto.RecalculateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	computed, err := s.billing.RunAggregation(ctx, &dto.RunAggregationRequest{
		LocationID:      inv.LocationID,
		PeriodStart:     inv.PeriodStart,
		PeriodEnd:       inv.PeriodEnd,
		IncludeShifts:   req.IncludeShifts,
		IncludePatrols:  req.IncludePatrols,
		IncludeCallouts: req.IncludeCallouts,
	})
	if err != nil {
		// The invoice is untouched on failure; the merge below only happens
		// on a fully successful run.
		return nil, err
	}

	inv.LineItems = invoice.MergeLineItems(inv.LineItems, computed)

	updated, err := s.InvoiceRepo.Update(ctx, inv)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(updated), nil
}
