package orderreturn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailops/internal/core/types"
)

func sampleOrder() OrderSnapshot {
	return OrderSnapshot{
		Number: "SO-2026-00042",
		Lines: []OrderLine{
			{OrderItemID: "line-1", ProductID: "prod-1", Quantity: 3, Rate: types.MustMoney("10")},
			{OrderItemID: "line-2", ProductID: "prod-2", Quantity: 1, Rate: types.MustMoney("25")},
		},
	}
}

func TestDraft_InitSession_DerivesReturnLines(t *testing.T) {
	d := NewDraft()
	d.InitSession("order-1", sampleOrder())

	assert.Equal(t, "order-1", d.OrderID)
	require.NotNil(t, d.Order)
	assert.Equal(t, "order-1", d.Order.OrderID)

	require.Len(t, d.ReturnItems, 2)
	for _, it := range d.ReturnItems {
		assert.NotEmpty(t, it.ID)
		assert.Equal(t, 0.0, it.ReturnQuantity)
		assert.True(t, it.Amount.IsZero())
	}
	assert.Equal(t, 3.0, d.ReturnItems[0].OriginalQuantity)
	assert.Empty(t, d.ExchangeItems)
	assert.True(t, d.ReturnTotal.IsZero())
}

func TestDraft_SetOrderID_ClearsPriorSession(t *testing.T) {
	d := NewDraft()
	d.InitSession("order-1", sampleOrder())
	d.UpdateReturnQuantity(d.ReturnItems[0].ID, 2)
	d.SetReason("reason-1", "damaged box")
	d.AddExchangeItem(ExchangeItem{ProductID: "prod-9", Quantity: 1, Rate: types.MustMoney("5")})

	d.SetOrderID("order-2")

	assert.Equal(t, "order-2", d.OrderID)
	assert.Nil(t, d.Order)
	assert.Empty(t, d.ReturnItems)
	assert.Empty(t, d.ExchangeItems)
	assert.Empty(t, d.ReturnReasonID)
	assert.Empty(t, d.ReturnNotes)
	assert.True(t, d.ReturnTotal.IsZero())
	assert.True(t, d.ExchangeTotal.IsZero())
}

func TestDraft_UpdateReturnQuantity_Clamps(t *testing.T) {
	d := NewDraft()
	d.InitSession("order-1", sampleOrder())
	itemID := d.ReturnItems[0].ID // original quantity 3, rate 10

	d.UpdateReturnQuantity(itemID, 10)
	assert.Equal(t, 3.0, d.ReturnItems[0].ReturnQuantity)
	assert.True(t, d.ReturnItems[0].Amount.Equal(types.MustMoney("30")))

	d.UpdateReturnQuantity(itemID, -5)
	assert.Equal(t, 0.0, d.ReturnItems[0].ReturnQuantity)
	assert.True(t, d.ReturnItems[0].Amount.IsZero())

	d.UpdateReturnQuantity(itemID, 2)
	assert.Equal(t, 2.0, d.ReturnItems[0].ReturnQuantity)
	assert.True(t, d.ReturnItems[0].Amount.Equal(types.MustMoney("20")))
	assert.True(t, d.ReturnTotal.Equal(types.MustMoney("20")))

	// Unknown line is a no-op
	d.UpdateReturnQuantity("missing", 1)
	assert.True(t, d.ReturnTotal.Equal(types.MustMoney("20")))
}

func TestDraft_SetReason_AppliesToWholeTransaction(t *testing.T) {
	d := NewDraft()
	d.InitSession("order-1", sampleOrder())

	d.SetReason("reason-2", "wrong size")
	assert.Equal(t, "reason-2", d.ReturnReasonID)
	assert.Equal(t, "wrong size", d.ReturnNotes)
}

func TestDraft_AddExchangeItem_SerializedNeverMerges(t *testing.T) {
	d := NewDraft()

	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", StockID: "stock-1", Quantity: 1,
		Rate: types.MustMoney("100"), SerialNumbers: []string{"SN-001"},
	})
	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", StockID: "stock-1", Quantity: 1,
		Rate: types.MustMoney("100"), SerialNumbers: []string{"SN-002"},
	})

	// Each serial identifies a distinct physical unit
	require.Len(t, d.ExchangeItems, 2)
	assert.True(t, d.ExchangeTotal.Equal(types.MustMoney("200")))

	// A non-serialized duplicate must not merge into a serialized row either
	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", StockID: "stock-1", Quantity: 2,
		Rate: types.MustMoney("100"),
	})
	require.Len(t, d.ExchangeItems, 3)
}

func TestDraft_AddExchangeItem_NonSerializedMergesWithClamp(t *testing.T) {
	d := NewDraft()

	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", StockID: "stock-1", Quantity: 3,
		Rate: types.MustMoney("10"), AvailableQuantity: 5,
	})
	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", StockID: "stock-1", Quantity: 4,
		Rate: types.MustMoney("10"),
	})

	// Sum 7 is capped at the available stock of 5
	require.Len(t, d.ExchangeItems, 1)
	assert.Equal(t, 5.0, d.ExchangeItems[0].Quantity)
	assert.True(t, d.ExchangeTotal.Equal(types.MustMoney("50")))

	// Different stock variant stays separate
	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", StockID: "stock-2", Quantity: 1,
		Rate: types.MustMoney("10"),
	})
	assert.Len(t, d.ExchangeItems, 2)
}

func TestDraft_AddExchangeItem_NoClampWithoutAvailableQuantity(t *testing.T) {
	d := NewDraft()

	d.AddExchangeItem(ExchangeItem{ProductID: "prod-1", Quantity: 3, Rate: types.MustMoney("2")})
	d.AddExchangeItem(ExchangeItem{ProductID: "prod-1", Quantity: 4, Rate: types.MustMoney("2")})

	require.Len(t, d.ExchangeItems, 1)
	assert.Equal(t, 7.0, d.ExchangeItems[0].Quantity)
	assert.True(t, d.ExchangeTotal.Equal(types.MustMoney("14")))
}

func TestDraft_UpdateExchangeItem_MergePatch(t *testing.T) {
	d := NewDraft()
	d.AddExchangeItem(ExchangeItem{
		ProductID: "prod-1", Quantity: 2, Rate: types.MustMoney("10"), AvailableQuantity: 4,
	})
	itemID := d.ExchangeItems[0].ID

	qty := 3.0
	wholesale := true
	d.UpdateExchangeItem(ExchangeItemPatch{ID: itemID, Quantity: &qty, IsWholesale: &wholesale})

	assert.Equal(t, 3.0, d.ExchangeItems[0].Quantity)
	assert.True(t, d.ExchangeItems[0].IsWholesale)
	assert.True(t, d.ExchangeTotal.Equal(types.MustMoney("30")))

	// Quantity patches respect the available stock cap
	over := 99.0
	d.UpdateExchangeItem(ExchangeItemPatch{ID: itemID, Quantity: &over})
	assert.Equal(t, 4.0, d.ExchangeItems[0].Quantity)
}

func TestDraft_RemoveExchangeItem(t *testing.T) {
	d := NewDraft()
	d.AddExchangeItem(ExchangeItem{ProductID: "prod-1", Quantity: 1, Rate: types.MustMoney("10")})
	d.AddExchangeItem(ExchangeItem{ProductID: "prod-2", Quantity: 1, Rate: types.MustMoney("20")})

	d.RemoveExchangeItem(d.ExchangeItems[0].ID)
	require.Len(t, d.ExchangeItems, 1)
	assert.Equal(t, "prod-2", d.ExchangeItems[0].ProductID)
	assert.True(t, d.ExchangeTotal.Equal(types.MustMoney("20")))

	d.RemoveExchangeItem("missing")
	assert.Len(t, d.ExchangeItems, 1)
}

func TestDraft_ClearIdempotent(t *testing.T) {
	d := NewDraft()
	d.InitSession("order-1", sampleOrder())
	d.UpdateReturnQuantity(d.ReturnItems[0].ID, 2)

	d.Clear()
	first := *d
	d.Clear()
	d.Clear()

	assert.Equal(t, first, *d)
	assert.Empty(t, d.OrderID)
	assert.Empty(t, d.ReturnItems)
	assert.True(t, d.ReturnTotal.IsZero())
}
