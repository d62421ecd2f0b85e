package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailops/internal/core/types"
)

func item(productID, stockID string, qty float64, price string) Item {
	return Item{
		ProductID:      productID,
		ProductStockID: stockID,
		Quantity:       qty,
		PurchasePrice:  types.MustMoney(price),
	}
}

func TestDraft_AddItem_MergesSameProductAndStock(t *testing.T) {
	d := NewDraft()

	d.AddItem(item("prod-1", "stock-1", 2, "10"))
	require.Len(t, d.Items, 1)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("20")))

	// Same product+stock merges into the existing row
	d.AddItem(item("prod-1", "stock-1", 3, "10"))
	require.Len(t, d.Items, 1)
	assert.Equal(t, 5.0, d.Items[0].Quantity)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("50")))

	// Same product, different stock variant stays separate
	d.AddItem(item("prod-1", "stock-2", 1, "10"))
	assert.Len(t, d.Items, 2)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("60")))
}

func TestDraft_AddItem_IgnoresMissingProduct(t *testing.T) {
	d := NewDraft()
	d.AddItem(Item{Quantity: 5, PurchasePrice: types.MustMoney("10")})
	assert.Empty(t, d.Items)
	assert.True(t, d.GrandTotal.IsZero())
}

func TestDraft_SetItems_DropsLinesWithoutProduct(t *testing.T) {
	d := NewDraft()
	d.SetItems([]Item{
		item("prod-1", "", 2, "10"),
		{Quantity: 3, PurchasePrice: types.MustMoney("5")},
		item("prod-2", "", 1, "7.50"),
	})

	require.Len(t, d.Items, 2)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("27.50")))
	for _, it := range d.Items {
		assert.NotEmpty(t, it.ID)
	}
}

func TestDraft_GrandTotalConsistency(t *testing.T) {
	d := NewDraft()

	d.AddItem(item("prod-1", "", 2, "10"))
	d.AddItem(item("prod-2", "", 4, "2.25"))
	d.AddItem(item("prod-3", "", 1, "99.99"))

	d.UpdateItemQuantity(d.Items[1].ID, 10)
	d.UpdateItemPurchasePrice(d.Items[0].ID, types.MustMoney("12.50"))
	d.RemoveItem(d.Items[2].ID)

	// GrandTotal must always equal the sum of line amounts
	expected := types.Zero()
	for _, it := range d.Items {
		assert.True(t, it.Amount.Equal(types.LineAmount(it.Quantity, it.PurchasePrice)))
		expected = expected.Add(it.Amount)
	}
	assert.True(t, d.GrandTotal.Equal(expected))
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("47.50")))
}

func TestDraft_UpdateItem_MergePatch(t *testing.T) {
	d := NewDraft()
	d.AddItem(item("prod-1", "stock-1", 2, "10"))
	itemID := d.Items[0].ID

	qty := 4.0
	d.UpdateItem(ItemPatch{ID: itemID, Quantity: &qty})

	require.Len(t, d.Items, 1)
	assert.Equal(t, 4.0, d.Items[0].Quantity)
	// Untouched fields survive the patch
	assert.Equal(t, "prod-1", d.Items[0].ProductID)
	assert.Equal(t, "stock-1", d.Items[0].ProductStockID)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("40")))
}

func TestDraft_UpdateItem_AppendsWhenAbsent(t *testing.T) {
	d := NewDraft()

	productID := "prod-9"
	qty := 2.0
	price := types.MustMoney("3")
	d.UpdateItem(ItemPatch{ID: "unknown", ProductID: &productID, Quantity: &qty, PurchasePrice: &price})

	require.Len(t, d.Items, 1)
	assert.True(t, d.GrandTotal.Equal(types.MustMoney("6")))

	// Without a product reference nothing is appended
	d.UpdateItem(ItemPatch{ID: "another-unknown", Quantity: &qty})
	assert.Len(t, d.Items, 1)
}

func TestDraft_UpdateItemQuantity_RejectsNegative(t *testing.T) {
	d := NewDraft()
	d.AddItem(item("prod-1", "", 2, "10"))
	itemID := d.Items[0].ID

	d.UpdateItemQuantity(itemID, -1)
	assert.Equal(t, 2.0, d.Items[0].Quantity)

	d.UpdateItemPurchasePrice(itemID, types.MustMoney("-5"))
	assert.True(t, d.Items[0].PurchasePrice.Equal(types.MustMoney("10")))

	// Unknown id is a no-op
	d.UpdateItemQuantity("missing", 7)
	assert.Equal(t, 2.0, d.Items[0].Quantity)
}

func TestDraft_ReceivedQuantity_DerivesStatusAndClamps(t *testing.T) {
	d := NewDraft()
	d.AddItem(item("prod-1", "", 10, "1"))
	itemID := d.Items[0].ID

	assert.Equal(t, ReceiveOrdered, d.Items[0].ReceiveStatus)

	d.UpdateItemReceivedQuantity(itemID, 4)
	assert.Equal(t, 4.0, d.Items[0].QuantityReceived)
	assert.Equal(t, ReceivePartiallyReceived, d.Items[0].ReceiveStatus)

	d.UpdateItemReceivedQuantity(itemID, 10)
	assert.Equal(t, ReceiveReceived, d.Items[0].ReceiveStatus)

	// Over-receiving clamps to the ordered quantity
	d.UpdateItemReceivedQuantity(itemID, 25)
	assert.Equal(t, 10.0, d.Items[0].QuantityReceived)
	assert.Equal(t, ReceiveReceived, d.Items[0].ReceiveStatus)

	d.UpdateItemReceivedQuantity(itemID, -3)
	assert.Equal(t, 10.0, d.Items[0].QuantityReceived)

	// Shrinking the ordered quantity pulls the received quantity down with it
	d.UpdateItemQuantity(itemID, 6)
	assert.Equal(t, 6.0, d.Items[0].QuantityReceived)
	assert.Equal(t, ReceiveReceived, d.Items[0].ReceiveStatus)
}

func TestDraft_UpdatePayment_Accumulates(t *testing.T) {
	d := NewDraft()
	d.AddItem(item("prod-1", "", 10, "10"))
	require.True(t, d.GrandTotal.Equal(types.MustMoney("100")))
	assert.Equal(t, PaymentPending, d.PaymentStatus)

	d.UpdatePayment(types.MustMoney("40"))
	assert.True(t, d.AmountPaid.Equal(types.MustMoney("40")))
	assert.True(t, d.AmountDue.Equal(types.MustMoney("60")))
	assert.Equal(t, PaymentPartial, d.PaymentStatus)

	d.UpdatePayment(types.MustMoney("60"))
	assert.True(t, d.AmountPaid.Equal(types.MustMoney("100")))
	assert.True(t, d.AmountDue.IsZero())
	assert.Equal(t, PaymentPaid, d.PaymentStatus)
}

func TestDraft_Setters(t *testing.T) {
	d := NewDraft()

	d.SetSupplier("sup-1")
	d.SetSupplierDetails("Acme Wholesale")
	d.SetPurchaseType(PurchaseTypeWalkIn)
	d.SetDraftReference("DRAFT-42")
	d.SetInvoiceNumber("INV-100")
	d.SetNotes("deliver monday")
	d.SetStatus("submitted")
	d.SetPaymentStatus(PaymentPartial)

	assert.Equal(t, "sup-1", d.SupplierID)
	assert.Equal(t, "Acme Wholesale", d.SupplierName)
	assert.Equal(t, PurchaseTypeWalkIn, d.PurchaseType)
	assert.Equal(t, "DRAFT-42", d.DraftReference)
	assert.Equal(t, "INV-100", d.InvoiceNumber)
	assert.Equal(t, "deliver monday", d.Notes)
	assert.Equal(t, "submitted", d.Status)
	assert.Equal(t, PaymentPartial, d.PaymentStatus)
	// Setters never touch totals
	assert.True(t, d.GrandTotal.IsZero())
}
