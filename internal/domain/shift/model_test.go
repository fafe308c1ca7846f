package shift

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/guardbill/guardbill/internal/types"
)

func TestShift_IsBillable(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	sh := New(ctx, "loc_1", 1, start, start.Add(8*time.Hour))
	assert.False(t, sh.IsBillable())

	sh.AppendStatus(types.ShiftStatusStarted, start)
	assert.False(t, sh.IsBillable())

	sh.AppendStatus(types.ShiftStatusCompleted, start.Add(8*time.Hour))
	assert.True(t, sh.IsBillable())
}

func TestShift_ActualHours(t *testing.T) {
	ctx := context.Background()
	margin := 15 * time.Minute
	schedStart := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	schedEnd := schedStart.Add(8 * time.Hour)

	newShift := func() *Shift {
		return New(ctx, "loc_1", 1, schedStart, schedEnd)
	}

	t.Run("NoClockTimesFallBackToSchedule", func(t *testing.T) {
		sh := newShift()
		assert.True(t, sh.ActualHours(margin).Equal(decimal.NewFromInt(8)))
	})

	t.Run("ClockWithinMarginSnapsToSchedule", func(t *testing.T) {
		sh := newShift()
		sh.ClockIn = lo.ToPtr(schedStart.Add(-10 * time.Minute))
		sh.ClockOut = lo.ToPtr(schedEnd.Add(5 * time.Minute))
		assert.True(t, sh.ActualHours(margin).Equal(decimal.NewFromInt(8)))
	})

	t.Run("ClockOutsideMarginIsUsedAsIs", func(t *testing.T) {
		sh := newShift()
		sh.ClockIn = lo.ToPtr(schedStart.Add(time.Hour))
		sh.ClockOut = lo.ToPtr(schedEnd)
		assert.True(t, sh.ActualHours(margin).Equal(decimal.NewFromInt(7)))
	})

	t.Run("InvertedWindowClampsToZero", func(t *testing.T) {
		sh := newShift()
		sh.ClockIn = lo.ToPtr(schedEnd.Add(time.Hour))
		sh.ClockOut = lo.ToPtr(schedStart)
		assert.True(t, sh.ActualHours(margin).IsZero())
	})
}

func TestShift_Validate(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		sh := New(ctx, "loc_1", 2, start, start.Add(8*time.Hour))
		assert.NoError(t, sh.Validate())
	})

	t.Run("MissingLocation", func(t *testing.T) {
		sh := New(ctx, "", 2, start, start.Add(8*time.Hour))
		assert.Error(t, sh.Validate())
	})

	t.Run("NegativeWorkers", func(t *testing.T) {
		sh := New(ctx, "loc_1", -1, start, start.Add(8*time.Hour))
		assert.Error(t, sh.Validate())
	})

	t.Run("InvertedSchedule", func(t *testing.T) {
		sh := New(ctx, "loc_1", 2, start, start.Add(-time.Hour))
		assert.Error(t, sh.Validate())
	})
}
