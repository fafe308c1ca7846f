package callout

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/guardbill/guardbill/internal/types"
)

func TestStatusEntry_IsBillable(t *testing.T) {
	started := lo.ToPtr(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
	ended := lo.ToPtr(time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		entry    StatusEntry
		billable bool
	}{
		{
			name:     "CompletedWithWindow",
			entry:    StatusEntry{Status: types.CalloutStatusCompleted, StartedAt: started, EndedAt: ended},
			billable: true,
		},
		{
			name:     "CompletedMissingStart",
			entry:    StatusEntry{Status: types.CalloutStatusCompleted, EndedAt: ended},
			billable: false,
		},
		{
			name:     "CompletedMissingEnd",
			entry:    StatusEntry{Status: types.CalloutStatusCompleted, StartedAt: started},
			billable: false,
		},
		{
			name:     "DispatchedWithWindow",
			entry:    StatusEntry{Status: types.CalloutStatusDispatched, StartedAt: started, EndedAt: ended},
			billable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.billable, tt.entry.IsBillable())
		})
	}
}

func TestStatusEntry_ElapsedHours(t *testing.T) {
	entry := func(start, end time.Time) StatusEntry {
		return StatusEntry{
			Status:    types.CalloutStatusCompleted,
			StartedAt: &start,
			EndedAt:   &end,
		}
	}

	t.Run("WholeHours", func(t *testing.T) {
		e := entry(
			time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC),
		)
		assert.True(t, e.ElapsedHours().Equal(decimal.NewFromInt(2)))
	})

	t.Run("QuarterHour", func(t *testing.T) {
		e := entry(
			time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 14, 15, 0, 0, time.UTC),
		)
		assert.True(t, e.ElapsedHours().Equal(decimal.RequireFromString("0.25")))
	})

	t.Run("DateComponentIgnored", func(t *testing.T) {
		// The date is dropped: an entry ending two days later bills the
		// same as one ending the same day.
		e := entry(
			time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC),
		)
		assert.True(t, e.ElapsedHours().Equal(decimal.NewFromInt(2)))
	})

	t.Run("MidnightSpanGoesNegative", func(t *testing.T) {
		// Known upstream behaviour kept as-is: a window crossing midnight
		// produces a negative duration.
		e := entry(
			time.Date(2024, 3, 12, 23, 30, 0, 0, time.UTC),
			time.Date(2024, 3, 13, 0, 30, 0, 0, time.UTC),
		)
		assert.True(t, e.ElapsedHours().Equal(decimal.NewFromInt(-23)))
	})

	t.Run("MissingTimestamps", func(t *testing.T) {
		e := StatusEntry{Status: types.CalloutStatusCompleted}
		assert.True(t, e.ElapsedHours().IsZero())
	})
}

func TestCallout_BillableEntries(t *testing.T) {
	ctx := context.Background()
	co := New(ctx, "loc_1", "alarm", time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC))

	co.AppendStatus(types.CalloutStatusDispatched, nil, nil)
	co.AppendStatus(types.CalloutStatusCompleted,
		lo.ToPtr(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)),
		lo.ToPtr(time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC)))
	co.AppendStatus(types.CalloutStatusCompleted, nil, nil)

	assert.Len(t, co.BillableEntries(), 1)
}
