package purchaseorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailops/internal/core/apperror"
	"retailops/internal/core/id"
	"retailops/internal/core/types"
	"retailops/internal/domain/drafts/purchase"
)

func draftWithItems(t *testing.T) *purchase.Draft {
	t.Helper()
	d := purchase.NewDraft()
	d.SetSupplier(id.New().String())
	d.SetSupplierDetails("Acme Wholesale")
	d.AddItem(purchase.Item{
		ProductID:     id.New().String(),
		Quantity:      4,
		PurchasePrice: types.MustMoney("25"),
	})
	d.AddItem(purchase.Item{
		ProductID:      id.New().String(),
		ProductStockID: id.New().String(),
		Quantity:       2,
		PurchasePrice:  types.MustMoney("10"),
	})
	return d
}

func TestFromDraft_BuildsDocument(t *testing.T) {
	storeID := id.New()
	d := draftWithItems(t)
	d.SetNotes("urgent restock")
	d.SetInvoiceNumber("INV-77")

	doc, err := FromDraft(storeID, d)
	require.NoError(t, err)

	assert.Equal(t, storeID.String(), doc.StoreID)
	assert.Equal(t, "Acme Wholesale", doc.SupplierName)
	assert.Equal(t, "urgent restock", doc.Comment)
	assert.Equal(t, "INV-77", doc.InvoiceNumber)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, 1, doc.Lines[0].LineNo)
	assert.NotNil(t, doc.Lines[1].ProductStockID)
	assert.True(t, doc.GrandTotal.Equal(types.MustMoney("120")))
	assert.Equal(t, purchase.ReceiveOrdered, doc.Status)
	assert.Equal(t, purchase.PaymentPending, doc.PaymentStatus)
	assert.NoError(t, doc.Validate(context.Background()))
}

func TestFromDraft_EmptyDraftRejected(t *testing.T) {
	storeID := id.New()

	_, err := FromDraft(storeID, purchase.NewDraft())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyDraft, appErr.Code)

	_, err = FromDraft(storeID, nil)
	assert.Error(t, err)
}

func TestFromDraft_SupplierRequiredForSupplierPurchase(t *testing.T) {
	d := purchase.NewDraft()
	d.AddItem(purchase.Item{ProductID: id.New().String(), Quantity: 1, PurchasePrice: types.MustMoney("5")})

	_, err := FromDraft(id.New(), d)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSupplierRequired, appErr.Code)

	// Walk-in purchases do not need a supplier
	d.SetPurchaseType(purchase.PurchaseTypeWalkIn)
	doc, err := FromDraft(id.New(), d)
	require.NoError(t, err)
	assert.Nil(t, doc.SupplierID)
}

func TestFromDraft_CarriesPaymentProgress(t *testing.T) {
	d := draftWithItems(t) // total 120
	d.UpdatePayment(types.MustMoney("120"))

	doc, err := FromDraft(id.New(), d)
	require.NoError(t, err)
	assert.True(t, doc.AmountPaid.Equal(types.MustMoney("120")))
	assert.True(t, doc.AmountDue.IsZero())
	assert.Equal(t, purchase.PaymentPaid, doc.PaymentStatus)
}

func TestPurchaseOrder_ToDraft_RoundTrip(t *testing.T) {
	src := draftWithItems(t) // total 120
	src.SetNotes("recheck quantities")
	src.UpdatePayment(types.MustMoney("50"))

	doc, err := FromDraft(id.New(), src)
	require.NoError(t, err)

	d := doc.ToDraft()
	require.Len(t, d.Items, 2)
	assert.Equal(t, src.SupplierID, d.SupplierID)
	assert.Equal(t, "Acme Wholesale", d.SupplierName)
	assert.Equal(t, "recheck quantities", d.Notes)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("120")))
	assert.True(t, d.AmountPaid.Equal(types.MustMoney("50")))
	assert.True(t, d.AmountDue.Equal(types.MustMoney("70")))
	assert.Equal(t, purchase.PaymentPartial, d.PaymentStatus)
	assert.Equal(t, doc.Lines[1].ProductStockID.String(), d.Items[1].ProductStockID)
}

func TestPurchaseOrder_ReceiveLine(t *testing.T) {
	doc, err := FromDraft(id.New(), draftWithItems(t))
	require.NoError(t, err)

	// Partial receipt on the first line (qty 4)
	require.NoError(t, doc.ReceiveLine(doc.Lines[0].LineID, 2))
	assert.Equal(t, purchase.ReceivePartiallyReceived, doc.Lines[0].ReceiveStatus)
	assert.Equal(t, purchase.ReceivePartiallyReceived, doc.Status)

	// Over-receipt clamps to ordered quantity
	require.NoError(t, doc.ReceiveLine(doc.Lines[0].LineID, 99))
	assert.Equal(t, 4.0, doc.Lines[0].QuantityRecvd)
	assert.Equal(t, purchase.ReceiveReceived, doc.Lines[0].ReceiveStatus)
	assert.Equal(t, purchase.ReceivePartiallyReceived, doc.Status)

	// Completing the second line completes the document
	require.NoError(t, doc.ReceiveLine(doc.Lines[1].LineID, 2))
	assert.Equal(t, purchase.ReceiveReceived, doc.Status)

	assert.Error(t, doc.ReceiveLine(doc.Lines[0].LineID, -1))
	assert.Error(t, doc.ReceiveLine(id.New(), 1))
}

func TestPurchaseOrder_RecordPayment(t *testing.T) {
	doc, err := FromDraft(id.New(), draftWithItems(t)) // total 120
	require.NoError(t, err)

	require.NoError(t, doc.RecordPayment(types.MustMoney("50")))
	assert.Equal(t, purchase.PaymentPartial, doc.PaymentStatus)
	assert.True(t, doc.AmountDue.Equal(types.MustMoney("70")))

	require.NoError(t, doc.RecordPayment(types.MustMoney("70")))
	assert.Equal(t, purchase.PaymentPaid, doc.PaymentStatus)
	assert.True(t, doc.AmountDue.IsZero())

	assert.Error(t, doc.RecordPayment(types.MustMoney("-10")))
}
