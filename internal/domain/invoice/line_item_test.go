package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/guardbill/guardbill/internal/types"
)

func manualRow(total int64) LineItem {
	return LineItem{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
		UnitPrice: decimal.NewFromInt(total),
		Quantity:  decimal.NewFromInt(1),
		Total:     decimal.NewFromInt(total),
	}
}

func TestMergeLineItems(t *testing.T) {
	computedOld := NewComputedLineItem(types.LineItemDescriptionShift,
		decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.NewFromInt(200))
	computedNew := NewComputedLineItem(types.LineItemDescriptionShift,
		decimal.NewFromInt(20), decimal.NewFromInt(12), decimal.NewFromInt(240))

	t.Run("ReplacesComputedKeepsManual", func(t *testing.T) {
		manual := manualRow(50)
		existing := []LineItem{manual, computedOld}

		merged := MergeLineItems(existing, []LineItem{computedNew})
		assert.Len(t, merged, 2)
		assert.Equal(t, manual.ID, merged[0].ID)
		assert.Equal(t, computedNew.ID, merged[1].ID)
	})

	t.Run("DoesNotMutateInputs", func(t *testing.T) {
		existing := []LineItem{manualRow(50), computedOld}
		_ = MergeLineItems(existing, []LineItem{computedNew})
		assert.Len(t, existing, 2)
		assert.Equal(t, computedOld.ID, existing[1].ID)
	})

	t.Run("EmptyComputed", func(t *testing.T) {
		manual := manualRow(50)
		merged := MergeLineItems([]LineItem{manual, computedOld}, nil)
		assert.Len(t, merged, 1)
		assert.Equal(t, manual.ID, merged[0].ID)
	})
}

func TestNewComputedLineItem_Rounding(t *testing.T) {
	item := NewComputedLineItem(types.LineItemDescriptionCallout,
		decimal.RequireFromString("40.005"),
		decimal.RequireFromString("1.333"),
		decimal.RequireFromString("85.129"))

	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("40.01")))
	assert.True(t, item.Quantity.Equal(decimal.RequireFromString("1.33")))
	assert.True(t, item.Total.Equal(decimal.RequireFromString("85.13")))
}

func TestLineItem_IsManual(t *testing.T) {
	assert.True(t, manualRow(10).IsManual())
	assert.False(t, NewComputedLineItem(types.LineItemDescriptionPatrol,
		decimal.NewFromInt(10), decimal.NewFromInt(8), decimal.NewFromInt(80)).IsManual())
}
