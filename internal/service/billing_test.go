package service

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardbill/guardbill/internal/api/dto"
	"github.com/guardbill/guardbill/internal/config"
	"github.com/guardbill/guardbill/internal/domain/callout"
	"github.com/guardbill/guardbill/internal/domain/location"
	"github.com/guardbill/guardbill/internal/domain/patrol"
	"github.com/guardbill/guardbill/internal/domain/shift"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/testutil"
	"github.com/guardbill/guardbill/internal/types"
)

type billingTestEnv struct {
	ctx       context.Context
	params    ServiceParams
	locations *testutil.InMemoryLocationStore
	shifts    *testutil.InMemoryShiftStore
	patrols   *testutil.InMemoryPatrolStore
	callouts  *testutil.InMemoryCalloutStore
	invoices  *testutil.InMemoryInvoiceStore
	location  *location.Location
}

var (
	periodStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
)

func newBillingTestEnv(t *testing.T) *billingTestEnv {
	t.Helper()

	ctx := types.SetTenantID(context.Background(), "tenant_test")

	env := &billingTestEnv{
		ctx:       ctx,
		locations: testutil.NewInMemoryLocationStore(),
		shifts:    testutil.NewInMemoryShiftStore(),
		patrols:   testutil.NewInMemoryPatrolStore(),
		callouts:  testutil.NewInMemoryCalloutStore(),
		invoices:  testutil.NewInMemoryInvoiceStore(),
	}
	env.params = ServiceParams{
		Logger:       logger.GetLogger(),
		Config:       config.GetDefaultConfig(),
		LocationRepo: env.locations,
		ShiftRepo:    env.shifts,
		PatrolRepo:   env.patrols,
		CalloutRepo:  env.callouts,
		InvoiceRepo:  env.invoices,
	}

	loc := location.New(ctx, "Harbour Terminal", location.RateConfig{
		ShiftHourlyRate:       decimal.NewFromInt(20),
		PatrolPerHitRate:      decimal.NewFromInt(10),
		CalloutInitialMinutes: 30,
		CalloutInitialCost:    decimal.NewFromInt(15),
		CalloutPerHourRate:    decimal.NewFromInt(40),
	})
	created, err := env.locations.Create(ctx, loc)
	require.NoError(t, err)
	env.location = created

	return env
}

// addCompletedShift adds a billable shift whose scheduled window spans the
// given number of hours; clock times are unset, so actual hours fall back to
// the schedule.
func (env *billingTestEnv) addCompletedShift(t *testing.T, day, hours, workers int) *shift.Shift {
	t.Helper()

	start := time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC)
	sh := shift.New(env.ctx, env.location.ID, workers, start, start.Add(time.Duration(hours)*time.Hour))
	sh.AppendStatus(types.ShiftStatusStarted, start)
	sh.AppendStatus(types.ShiftStatusCompleted, start.Add(time.Duration(hours)*time.Hour))

	created, err := env.shifts.Create(env.ctx, sh)
	require.NoError(t, err)
	return created
}

func (env *billingTestEnv) aggregationRequest(shifts, patrols, callouts bool) *dto.RunAggregationRequest {
	return &dto.RunAggregationRequest{
		LocationID:      env.location.ID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		IncludeShifts:   shifts,
		IncludePatrols:  patrols,
		IncludeCallouts: callouts,
	}
}

func TestRunAggregation_ValidationGate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RunAggregationRequest)
	}{
		{
			name:   "MissingPeriodStart",
			mutate: func(r *dto.RunAggregationRequest) { r.PeriodStart = time.Time{} },
		},
		{
			name:   "MissingPeriodEnd",
			mutate: func(r *dto.RunAggregationRequest) { r.PeriodEnd = time.Time{} },
		},
		{
			name:   "MissingLocation",
			mutate: func(r *dto.RunAggregationRequest) { r.LocationID = "" },
		},
		{
			name: "NoCategorySelected",
			mutate: func(r *dto.RunAggregationRequest) {
				r.IncludeShifts = false
				r.IncludePatrols = false
				r.IncludeCallouts = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newBillingTestEnv(t)
			svc := NewBillingService(env.params)

			req := env.aggregationRequest(true, true, true)
			tt.mutate(req)

			_, err := svc.RunAggregation(env.ctx, req)
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))

			// No record store was queried before the gate rejected.
			assert.Zero(t, env.shifts.ListCalls.Load())
			assert.Zero(t, env.patrols.ListCalls.Load())
			assert.Zero(t, env.patrols.CountLogsCalls.Load())
			assert.Zero(t, env.callouts.ListCalls.Load())
		})
	}
}

func TestRunAggregation_UnknownLocation(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	req := env.aggregationRequest(true, false, false)
	req.LocationID = "loc_missing"

	_, err := svc.RunAggregation(env.ctx, req)
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.Zero(t, env.shifts.ListCalls.Load())
}

func TestRunAggregation_ShiftCosts(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	env.addCompletedShift(t, 5, 4, 1)
	env.addCompletedShift(t, 6, 6, 1)

	// A shift that never completed is excluded from the sum.
	start := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)
	cancelled := shift.New(env.ctx, env.location.ID, 1, start, start.Add(8*time.Hour))
	cancelled.AppendStatus(types.ShiftStatusCancelled, start)
	_, err := env.shifts.Create(env.ctx, cancelled)
	require.NoError(t, err)

	items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(true, false, false))
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, types.LineItemDescriptionShift, item.Description)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(20)), "unit price: %s", item.UnitPrice)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(10)), "quantity: %s", item.Quantity)
	assert.True(t, item.Total.Equal(decimal.NewFromInt(200)), "total: %s", item.Total)
}

func TestRunAggregation_ShiftWorkerMultiplier(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	// Two guards on a 4-hour shift double the billable hours; zero guards
	// contribute nothing without failing the run.
	env.addCompletedShift(t, 5, 4, 2)
	env.addCompletedShift(t, 6, 6, 0)

	items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(true, false, false))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(8)), "quantity: %s", items[0].Quantity)
	assert.True(t, items[0].Total.Equal(decimal.NewFromInt(160)), "total: %s", items[0].Total)
}

func TestRunAggregation_ShiftLineEmittedWhenZero(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	// No shifts at all: the category is enabled, so the line is still
	// emitted with zero quantity and total.
	items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(true, false, false))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, types.LineItemDescriptionShift, items[0].Description)
	assert.True(t, items[0].Quantity.IsZero())
	assert.True(t, items[0].Total.IsZero())
}

func TestRunAggregation_PatrolCosts(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	alpha := patrol.New(env.ctx, env.location.ID, "Perimeter Alpha")
	bravo := patrol.New(env.ctx, env.location.ID, "Warehouse Bravo")
	_, err := env.patrols.Create(env.ctx, alpha)
	require.NoError(t, err)
	_, err = env.patrols.Create(env.ctx, bravo)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		logAt := time.Date(2024, 3, 10+i, 22, 0, 0, 0, time.UTC)
		_, err = env.patrols.AddLog(env.ctx, patrol.NewLogEntry(env.ctx, alpha.ID, "guard-1", logAt))
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		logAt := time.Date(2024, 3, 15+i, 23, 0, 0, 0, time.UTC)
		_, err = env.patrols.AddLog(env.ctx, patrol.NewLogEntry(env.ctx, bravo.ID, "guard-2", logAt))
		require.NoError(t, err)
	}
	// Outside the billing period, must not be counted.
	_, err = env.patrols.AddLog(env.ctx, patrol.NewLogEntry(env.ctx, alpha.ID, "guard-1",
		time.Date(2024, 4, 2, 22, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(false, true, false))
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, types.LineItemDescriptionPatrol, item.Description)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(10)), "unit price: %s", item.UnitPrice)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(8)), "quantity: %s", item.Quantity)
	assert.True(t, item.Total.Equal(decimal.NewFromInt(80)), "total: %s", item.Total)

	// One count query per patrol.
	assert.Equal(t, int64(2), env.patrols.CountLogsCalls.Load())
}

func TestRunAggregation_CalloutThreshold(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	co := callout.New(env.ctx, env.location.ID, "alarm activation",
		time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC))
	// 2h elapsed: over the 0.5h threshold, so 15 + (2 - 0.5) * 40 = 75.
	co.AppendStatus(types.CalloutStatusCompleted,
		lo.ToPtr(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)),
		lo.ToPtr(time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)))
	// 0.25h elapsed: under the threshold, charged in full at the hourly
	// rate with no initial cost: 0.25 * 40 = 10.
	co.AppendStatus(types.CalloutStatusCompleted,
		lo.ToPtr(time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC)),
		lo.ToPtr(time.Date(2024, 3, 12, 14, 15, 0, 0, time.UTC)))
	_, err := env.callouts.Create(env.ctx, co)
	require.NoError(t, err)

	items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(false, false, true))
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, types.LineItemDescriptionCallout, item.Description)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(40)), "unit price: %s", item.UnitPrice)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)), "quantity: %s", item.Quantity)
	assert.True(t, item.Total.Equal(decimal.NewFromInt(85)), "total: %s", item.Total)
}

func TestRunAggregation_CalloutSkips(t *testing.T) {
	t.Run("NoCalloutRecords", func(t *testing.T) {
		env := newBillingTestEnv(t)
		svc := NewBillingService(env.params)

		items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(false, false, true))
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("ZeroCost", func(t *testing.T) {
		env := newBillingTestEnv(t)
		svc := NewBillingService(env.params)

		// A callout exists but has no billable entry: dispatched without a
		// completed response window accrues nothing, and a zero-cost
		// category emits no line item.
		co := callout.New(env.ctx, env.location.ID, "false alarm",
			time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC))
		co.AppendStatus(types.CalloutStatusCancelled, nil, nil)
		_, err := env.callouts.Create(env.ctx, co)
		require.NoError(t, err)

		items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(false, false, true))
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestRunAggregation_CategoryOrder(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	env.addCompletedShift(t, 5, 4, 1)

	co := callout.New(env.ctx, env.location.ID, "alarm",
		time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC))
	co.AppendStatus(types.CalloutStatusCompleted,
		lo.ToPtr(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)),
		lo.ToPtr(time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC)))
	_, err := env.callouts.Create(env.ctx, co)
	require.NoError(t, err)

	items, err := svc.RunAggregation(env.ctx, env.aggregationRequest(true, true, true))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, types.LineItemDescriptionShift, items[0].Description)
	assert.Equal(t, types.LineItemDescriptionPatrol, items[1].Description)
	assert.Equal(t, types.LineItemDescriptionCallout, items[2].Description)
}

func TestRunAggregation_FetchFailure(t *testing.T) {
	env := newBillingTestEnv(t)
	svc := NewBillingService(env.params)

	env.shifts.ListErr = ierr.NewError("connection refused").
		WithHint("Failed to fetch shift records").
		Mark(ierr.ErrDatabase)

	_, err := svc.RunAggregation(env.ctx, env.aggregationRequest(true, true, true))
	require.Error(t, err)
}
