package orderreturn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailops/internal/core/id"
	"retailops/internal/core/types"
)

func TestLedger_StoreIsolation(t *testing.T) {
	l := NewLedger()
	storeA := id.New()
	storeB := id.New()

	l.InitSession(storeA, "order-1", sampleOrder())
	l.AddExchangeItem(storeB, ExchangeItem{ProductID: "prod-9", Quantity: 1, Rate: types.MustMoney("5")})

	a := l.Get(storeA)
	b := l.Get(storeB)

	assert.Equal(t, "order-1", a.OrderID)
	assert.Empty(t, a.ExchangeItems)
	assert.Empty(t, b.OrderID)
	assert.Len(t, b.ExchangeItems, 1)

	l.Clear(storeA)
	assert.Empty(t, l.Get(storeA).ReturnItems)
	assert.Len(t, l.Get(storeB).ExchangeItems, 1)
}

func TestLedger_GetReturnsSnapshot(t *testing.T) {
	l := NewLedger()
	storeID := id.New()
	l.InitSession(storeID, "order-1", sampleOrder())

	snap := l.Get(storeID)
	snap.ReturnItems[0].ReturnQuantity = 999
	snap.Order.Lines[0].Quantity = 999

	fresh := l.Get(storeID)
	assert.Equal(t, 0.0, fresh.ReturnItems[0].ReturnQuantity)
	assert.Equal(t, 3.0, fresh.Order.Lines[0].Quantity)
}

func TestLedger_ClearIdempotent(t *testing.T) {
	l := NewLedger()
	storeID := id.New()

	l.InitSession(storeID, "order-1", sampleOrder())
	l.UpdateReturnQuantity(storeID, l.Get(storeID).ReturnItems[0].ID, 2)
	l.SetReason(storeID, "reason-1", "defective")

	l.Clear(storeID)
	first := l.Get(storeID)
	l.Clear(storeID)
	l.Clear(storeID)
	again := l.Get(storeID)

	assert.Equal(t, first, again)
	assert.Empty(t, again.ReturnItems)
	assert.Empty(t, again.ReturnReasonID)
}

func TestLedger_SessionFlow(t *testing.T) {
	l := NewLedger()
	storeID := id.New()

	l.SetOrderID(storeID, "order-1")
	assert.Equal(t, "order-1", l.Get(storeID).OrderID)

	l.InitSession(storeID, "order-1", sampleOrder())
	session := l.Get(storeID)
	require.Len(t, session.ReturnItems, 2)

	l.UpdateReturnQuantity(storeID, session.ReturnItems[1].ID, 1)
	l.AddExchangeItem(storeID, ExchangeItem{ProductID: "prod-5", Quantity: 2, Rate: types.MustMoney("12.50")})
	l.SetReason(storeID, "reason-3", "exchange for bigger size")

	got := l.Get(storeID)
	assert.True(t, got.ReturnTotal.Equal(types.MustMoney("25")))
	assert.True(t, got.ExchangeTotal.Equal(types.MustMoney("25")))
	assert.Equal(t, "reason-3", got.ReturnReasonID)

	l.RemoveExchangeItem(storeID, got.ExchangeItems[0].ID)
	assert.Empty(t, l.Get(storeID).ExchangeItems)
}
