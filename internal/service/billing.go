// Package service provides business logic implementations for the GuardBill application.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/domain/invoice"
	"github.com/guardbill/guardbill/internal/domain/location"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

// BillingService computes invoice line items from the activity recorded at a
// location over a billing period. Shifts, patrols and callouts are
// independent categories toggled per run.
//
// A run is stateless and all-or-nothing: it validates, fetches, computes and
// returns line items, or fails without producing anything. The caller decides
// what to do with the result (see InvoiceService.Recalculate).
type BillingService interface {
	// RunAggregation computes line items for the selected categories in the
	// order shift, patrol, callout.
	RunAggregation(ctx context.Context, req *dto.RunAggregationRequest) ([]invoice.LineItem, error)
}

type billingService struct {
	ServiceParams
}

// NewBillingService creates a new billing service.
func NewBillingService(params ServiceParams) BillingService {
	return &billingService{ServiceParams: params}
}

func (s *billingService) RunAggregation(ctx context.Context, req *dto.RunAggregationRequest) ([]invoice.LineItem, error) {
	// Precondition gate: nothing is fetched until the request is valid and
	// the location's rate configuration resolves.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loc, err := s.LocationRepo.Get(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	rates := loc.Rates

	items := make([]invoice.LineItem, 0, 3)

	if req.IncludeShifts {
		item, err := s.computeShiftCosts(ctx, rates, req)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if req.IncludePatrols {
		item, err := s.computePatrolCosts(ctx, rates, req)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if req.IncludeCallouts {
		item, ok, err := s.computeCalloutCosts(ctx, rates, req)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}

	s.Logger.WithContext(ctx).Infow("billing aggregation completed",
		"location_id", req.LocationID,
		"period_start", req.PeriodStart,
		"period_end", req.PeriodEnd,
		"line_items", len(items),
	)
	return items, nil
}

// computeShiftCosts totals the billable guard-hours of completed shifts in
// the period. The line item is emitted whenever the category is enabled, even
// when the total is zero.
func (s *billingService) computeShiftCosts(ctx context.Context, rates location.RateConfig, req *dto.RunAggregationRequest) (invoice.LineItem, error) {
	shifts, err := s.ShiftRepo.ListByLocation(ctx, req.LocationID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return invoice.LineItem{}, ierr.WithError(err).
			WithMessage("failed to list shifts for billing").
			WithHint("Failed to fetch shift records").
			Mark(ierr.ErrInternal)
	}

	margin := time.Duration(s.Config.Billing.ShiftMarginMinutes) * time.Minute

	// One task per shift, fail-fast: the first failed task cancels the rest
	// and fails the whole category.
	p := pool.NewWithResults[decimal.Decimal]().
		WithContext(ctx).
		WithCancelOnError()
	for _, sh := range shifts {
		sh := sh
		p.Go(func(ctx context.Context) (decimal.Decimal, error) {
			if !sh.IsBillable() {
				return decimal.Zero, nil
			}
			workers := decimal.NewFromInt(int64(sh.AssignedWorkerCount))
			return sh.ActualHours(margin).Mul(workers), nil
		})
	}
	hoursPerShift, err := p.Wait()
	if err != nil {
		return invoice.LineItem{}, ierr.WithError(err).
			WithMessage("failed to compute shift hours").
			WithHint("Failed to compute shift costs").
			Mark(ierr.ErrInternal)
	}

	totalHours := decimal.Zero
	totalCost := decimal.Zero
	for _, hours := range hoursPerShift {
		totalHours = totalHours.Add(hours)
		totalCost = totalCost.Add(hours.Mul(rates.ShiftHourlyRate))
	}

	return invoice.NewComputedLineItem(
		types.LineItemDescriptionShift,
		rates.ShiftHourlyRate,
		totalHours,
		totalCost,
	), nil
}

// computePatrolCosts counts the checkpoint hits logged in the period across
// all of the location's patrol routes. Patrol definitions are not
// date-scoped; only their log entries are. The line item is emitted whenever
// the category is enabled.
func (s *billingService) computePatrolCosts(ctx context.Context, rates location.RateConfig, req *dto.RunAggregationRequest) (invoice.LineItem, error) {
	patrols, err := s.PatrolRepo.ListByLocation(ctx, req.LocationID)
	if err != nil {
		return invoice.LineItem{}, ierr.WithError(err).
			WithMessage("failed to list patrols for billing").
			WithHint("Failed to fetch patrol records").
			Mark(ierr.ErrInternal)
	}

	// One log-count query per patrol, fail-fast.
	p := pool.NewWithResults[int]().
		WithContext(ctx).
		WithCancelOnError()
	for _, pt := range patrols {
		pt := pt
		p.Go(func(ctx context.Context) (int, error) {
			return s.PatrolRepo.CountLogs(ctx, pt.ID, req.PeriodStart, req.PeriodEnd)
		})
	}
	counts, err := p.Wait()
	if err != nil {
		return invoice.LineItem{}, ierr.WithError(err).
			WithMessage("failed to count patrol logs").
			WithHint("Failed to fetch patrol log counts").
			Mark(ierr.ErrInternal)
	}

	totalHits := 0
	for _, c := range counts {
		totalHits += c
	}

	quantity := decimal.NewFromInt(int64(totalHits))
	return invoice.NewComputedLineItem(
		types.LineItemDescriptionPatrol,
		rates.PatrolPerHitRate,
		quantity,
		quantity.Mul(rates.PatrolPerHitRate),
	), nil
}

// computeCalloutCosts accumulates the cost of completed callout responses in
// the period. The cost is additive per status entry: responses running past
// the initial window incur the flat initial cost, with the window deducted
// from the chargeable hours; shorter responses are charged the per-hour rate
// on the full elapsed time. Quantity counts callout records, not entries.
//
// Unlike the other two categories, no line item is emitted when there are no
// callout records or the accumulated cost is zero.
func (s *billingService) computeCalloutCosts(ctx context.Context, rates location.RateConfig, req *dto.RunAggregationRequest) (invoice.LineItem, bool, error) {
	callouts, err := s.CalloutRepo.ListByLocation(ctx, req.LocationID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return invoice.LineItem{}, false, ierr.WithError(err).
			WithMessage("failed to list callouts for billing").
			WithHint("Failed to fetch callout records").
			Mark(ierr.ErrInternal)
	}
	if len(callouts) == 0 {
		return invoice.LineItem{}, false, nil
	}

	initialHours := decimal.NewFromInt(int64(rates.CalloutInitialMinutes)).
		Div(decimal.NewFromInt(60))

	totalCost := decimal.Zero
	for _, co := range callouts {
		for _, entry := range co.BillableEntries() {
			elapsed := entry.ElapsedHours()
			if elapsed.GreaterThan(initialHours) {
				totalCost = totalCost.Add(rates.CalloutInitialCost)
				elapsed = elapsed.Sub(initialHours)
			}
			totalCost = totalCost.Add(elapsed.Mul(rates.CalloutPerHourRate))
		}
	}

	if totalCost.IsZero() {
		return invoice.LineItem{}, false, nil
	}

	return invoice.NewComputedLineItem(
		types.LineItemDescriptionCallout,
		rates.CalloutPerHourRate,
		decimal.NewFromInt(int64(len(callouts))),
		totalCost,
	), true, nil
}
