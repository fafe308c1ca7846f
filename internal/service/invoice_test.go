package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardbill/guardbill/internal/api/dto"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/types"
)

func newInvoiceTestEnv(t *testing.T) (*billingTestEnv, InvoiceService) {
	t.Helper()
	env := newBillingTestEnv(t)
	return env, NewInvoiceService(env.params, NewBillingService(env.params))
}

func createTestInvoice(t *testing.T, env *billingTestEnv, svc InvoiceService) *dto.InvoiceResponse {
	t.Helper()
	inv, err := svc.CreateInvoice(env.ctx, &dto.CreateInvoiceRequest{
		LocationID:  env.location.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)
	return inv
}

func TestRecalculate_IdempotentReplacement(t *testing.T) {
	env, svc := newInvoiceTestEnv(t)

	env.addCompletedShift(t, 5, 4, 1)
	env.addCompletedShift(t, 6, 6, 1)

	created := createTestInvoice(t, env, svc)

	// A manual row the user is still editing: blank description.
	_, err := svc.UpdateInvoice(env.ctx, created.ID, &dto.UpdateInvoiceRequest{
		LineItems: []dto.LineItemRequest{
			{
				Description: "",
				UnitPrice:   decimal.NewFromInt(50),
				Quantity:    decimal.NewFromInt(1),
				Total:       decimal.NewFromInt(50),
			},
		},
	})
	require.NoError(t, err)

	req := &dto.RecalculateInvoiceRequest{IncludeShifts: true}

	first, err := svc.Recalculate(env.ctx, created.ID, req)
	require.NoError(t, err)
	require.Len(t, first.LineItems, 2)

	// Rerunning with identical inputs replaces the computed row instead of
	// duplicating it, and keeps the manual row.
	second, err := svc.Recalculate(env.ctx, created.ID, req)
	require.NoError(t, err)
	require.Len(t, second.LineItems, 2)

	manual := second.LineItems[0]
	assert.Empty(t, manual.Description)
	assert.True(t, manual.Total.Equal(decimal.NewFromInt(50)))

	computed := second.LineItems[1]
	assert.Equal(t, types.LineItemDescriptionShift, computed.Description)
	assert.True(t, computed.Quantity.Equal(decimal.NewFromInt(10)), "quantity: %s", computed.Quantity)
	assert.True(t, computed.Total.Equal(decimal.NewFromInt(200)), "total: %s", computed.Total)

	// Subtotal reflects manual + computed rows exactly once each.
	assert.True(t, second.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal: %s", second.Subtotal)
}

func TestRecalculate_FailureLeavesInvoiceUntouched(t *testing.T) {
	env, svc := newInvoiceTestEnv(t)

	env.addCompletedShift(t, 5, 4, 1)

	created := createTestInvoice(t, env, svc)

	first, err := svc.Recalculate(env.ctx, created.ID, &dto.RecalculateInvoiceRequest{IncludeShifts: true})
	require.NoError(t, err)
	require.Len(t, first.LineItems, 1)

	// A backend failure mid-run must not wipe previously computed rows.
	env.shifts.ListErr = ierr.NewError("connection refused").Mark(ierr.ErrDatabase)

	_, err = svc.Recalculate(env.ctx, created.ID, &dto.RecalculateInvoiceRequest{IncludeShifts: true})
	require.Error(t, err)

	current, err := svc.GetInvoice(env.ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, current.LineItems, 1)
	assert.Equal(t, types.LineItemDescriptionShift, current.LineItems[0].Description)
}

func TestRecalculate_NoCategorySelected(t *testing.T) {
	env, svc := newInvoiceTestEnv(t)
	created := createTestInvoice(t, env, svc)

	_, err := svc.Recalculate(env.ctx, created.ID, &dto.RecalculateInvoiceRequest{})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestCreateInvoice_Validation(t *testing.T) {
	env, svc := newInvoiceTestEnv(t)

	t.Run("UnknownLocation", func(t *testing.T) {
		_, err := svc.CreateInvoice(env.ctx, &dto.CreateInvoiceRequest{
			LocationID:  "loc_missing",
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
		})
		require.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
	})

	t.Run("InvertedPeriod", func(t *testing.T) {
		_, err := svc.CreateInvoice(env.ctx, &dto.CreateInvoiceRequest{
			LocationID:  env.location.ID,
			PeriodStart: periodEnd,
			PeriodEnd:   periodStart,
		})
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}

func TestUpdateInvoice_ManualRows(t *testing.T) {
	env, svc := newInvoiceTestEnv(t)
	created := createTestInvoice(t, env, svc)

	updated, err := svc.UpdateInvoice(env.ctx, created.ID, &dto.UpdateInvoiceRequest{
		LineItems: []dto.LineItemRequest{
			{Description: "Key replacement", UnitPrice: decimal.NewFromInt(30), Quantity: decimal.NewFromInt(2), Total: decimal.NewFromInt(60)},
		},
		Notes: lo.ToPtr("March keys"),
	})
	require.NoError(t, err)
	require.Len(t, updated.LineItems, 1)
	assert.Equal(t, "March keys", updated.Notes)
	assert.True(t, updated.Subtotal.Equal(decimal.NewFromInt(60)))

	fetched, err := svc.GetInvoice(env.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.LineItems, fetched.LineItems)
}
