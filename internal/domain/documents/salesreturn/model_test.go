package salesreturn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailops/internal/core/apperror"
	"retailops/internal/core/id"
	"retailops/internal/core/types"
	"retailops/internal/domain/drafts/orderreturn"
)

func activeSession(t *testing.T) *orderreturn.Draft {
	t.Helper()
	d := orderreturn.NewDraft()
	d.InitSession(id.New().String(), orderreturn.OrderSnapshot{
		Number: "SO-2026-00042",
		Lines: []orderreturn.OrderLine{
			{OrderItemID: "line-1", ProductID: id.New().String(), Quantity: 3, Rate: types.MustMoney("10")},
			{OrderItemID: "line-2", ProductID: id.New().String(), Quantity: 1, Rate: types.MustMoney("25")},
		},
	})
	return d
}

func TestFromSession_BuildsDocument(t *testing.T) {
	storeID := id.New()
	d := activeSession(t)
	d.UpdateReturnQuantity(d.ReturnItems[0].ID, 2)
	d.SetReason("reason-1", "damaged box")
	d.AddExchangeItem(orderreturn.ExchangeItem{
		ProductID: id.New().String(), Quantity: 1, Rate: types.MustMoney("15"),
	})

	doc, err := FromSession(storeID, d)
	require.NoError(t, err)

	assert.Equal(t, storeID.String(), doc.StoreID)
	assert.Equal(t, "SO-2026-00042", doc.OrderNumber)
	assert.Equal(t, "reason-1", doc.ReturnReasonID)

	// Only the line with a selected quantity survives
	require.Len(t, doc.ReturnedLines, 1)
	assert.Equal(t, "line-1", doc.ReturnedLines[0].OrderItemID)
	assert.Equal(t, 2.0, doc.ReturnedLines[0].ReturnQuantity)

	require.Len(t, doc.ExchangeLines, 1)
	assert.True(t, doc.ReturnTotal.Equal(types.MustMoney("20")))
	assert.True(t, doc.ExchangeTotal.Equal(types.MustMoney("15")))
	assert.True(t, doc.RefundTotal.Equal(types.MustMoney("5")))
	assert.NoError(t, doc.Validate(context.Background()))
}

func TestFromSession_NoActiveSession(t *testing.T) {
	_, err := FromSession(id.New(), orderreturn.NewDraft())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNoReturnSession, appErr.Code)

	_, err = FromSession(id.New(), nil)
	assert.Error(t, err)
}

func TestFromSession_NothingSelected(t *testing.T) {
	// Session exists but no quantity picked and nothing exchanged
	_, err := FromSession(id.New(), activeSession(t))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyDraft, appErr.Code)
}

func TestFromSession_ExchangeOnlyOwesDifference(t *testing.T) {
	d := activeSession(t)
	d.AddExchangeItem(orderreturn.ExchangeItem{
		ProductID: id.New().String(), Quantity: 2, Rate: types.MustMoney("30"),
	})

	doc, err := FromSession(id.New(), d)
	require.NoError(t, err)
	assert.Empty(t, doc.ReturnedLines)
	assert.True(t, doc.RefundTotal.Equal(types.MustMoney("-60")))
}

func TestSalesReturn_Validate_SerialCountMatchesQuantity(t *testing.T) {
	d := activeSession(t)
	d.AddExchangeItem(orderreturn.ExchangeItem{
		ProductID:     id.New().String(),
		Quantity:      2,
		Rate:          types.MustMoney("10"),
		SerialNumbers: []string{"SN-001"},
	})

	doc, err := FromSession(id.New(), d)
	require.NoError(t, err)
	assert.Error(t, doc.Validate(context.Background()))

	// Matching serial count passes
	d2 := activeSession(t)
	d2.AddExchangeItem(orderreturn.ExchangeItem{
		ProductID:     id.New().String(),
		Quantity:      1,
		Rate:          types.MustMoney("10"),
		SerialNumbers: []string{"SN-001"},
	})
	doc2, err := FromSession(id.New(), d2)
	require.NoError(t, err)
	assert.NoError(t, doc2.Validate(context.Background()))
}
