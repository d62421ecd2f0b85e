// Package purchase maintains in-progress purchase order drafts, one per store.
// A draft stages line items, supplier binding and payment progress in memory
// until the operator submits it as a purchase order document.
package purchase

import (
	"retailops/internal/core/id"
	"retailops/internal/core/types"
)

// PurchaseType classifies the sourcing of a draft.
type PurchaseType string

const (
	PurchaseTypeSupplier    PurchaseType = "supplier"
	PurchaseTypeWalkIn      PurchaseType = "walk_in"
	PurchaseTypeOwnPurchase PurchaseType = "own_purchase"
)

// PaymentStatus tracks how much of the draft total has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// ReceiveStatus tracks receiving progress of a single line.
type ReceiveStatus string

const (
	ReceiveOrdered           ReceiveStatus = "ordered"
	ReceivePartiallyReceived ReceiveStatus = "partially_received"
	ReceiveReceived          ReceiveStatus = "received"
)

// Item is one line of a purchase draft.
// Amount is always derived from Quantity and PurchasePrice, never set directly.
type Item struct {
	ID               string        `json:"id"`
	ProductID        string        `json:"productId"`
	ProductStockID   string        `json:"productStockId,omitempty"`
	ProductName      string        `json:"productName,omitempty"`
	Quantity         float64       `json:"quantity"`
	PurchasePrice    types.Money   `json:"purchasePrice"`
	Amount           types.Money   `json:"amount"`
	QuantityReceived float64       `json:"quantityReceived"`
	ReceiveStatus    ReceiveStatus `json:"receiveStatus"`
}

// sameProduct reports whether two lines reference the same catalog entry
// and stock variant. Lines with equal product but different variants
// stay separate.
func (it *Item) sameProduct(other Item) bool {
	return it.ProductID == other.ProductID && it.ProductStockID == other.ProductStockID
}

// recalc derives Amount and ReceiveStatus from the current fields.
func (it *Item) recalc() {
	it.Amount = types.LineAmount(it.Quantity, it.PurchasePrice)

	switch {
	case it.QuantityReceived >= it.Quantity && it.Quantity > 0:
		it.ReceiveStatus = ReceiveReceived
	case it.QuantityReceived > 0:
		it.ReceiveStatus = ReceivePartiallyReceived
	default:
		it.ReceiveStatus = ReceiveOrdered
	}
}

// ItemPatch carries a partial update for a line. Nil fields are left unchanged.
type ItemPatch struct {
	ID               string
	ProductID        *string
	ProductStockID   *string
	ProductName      *string
	Quantity         *float64
	PurchasePrice    *types.Money
	QuantityReceived *float64
}

// Draft is one store's in-progress purchase order.
// GrandTotal is kept consistent with the item list by every mutation.
type Draft struct {
	Items []Item `json:"items"`

	// SupplierID is empty for walk-in and own purchases
	SupplierID   string       `json:"supplierId,omitempty"`
	SupplierName string       `json:"supplierName,omitempty"`
	PurchaseType PurchaseType `json:"purchaseType"`

	Status         string `json:"status"`
	DraftReference string `json:"draftReference,omitempty"`
	InvoiceNumber  string `json:"invoiceNumber,omitempty"`
	Notes          string `json:"notes,omitempty"`

	GrandTotal    types.Money   `json:"grandTotal"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	AmountPaid    types.Money   `json:"amountPaid"`
	AmountDue     types.Money   `json:"amountDue"`
}

// NewDraft returns an empty draft in its initial state.
func NewDraft() *Draft {
	return &Draft{
		Items:         []Item{},
		PurchaseType:  PurchaseTypeSupplier,
		Status:        "draft",
		GrandTotal:    types.Zero(),
		PaymentStatus: PaymentPending,
		AmountPaid:    types.Zero(),
		AmountDue:     types.Zero(),
	}
}

// recalcTotal recomputes GrandTotal and AmountDue from the item list.
func (d *Draft) recalcTotal() {
	total := types.Zero()
	for i := range d.Items {
		total = total.Add(d.Items[i].Amount)
	}
	d.GrandTotal = total
	d.AmountDue = d.GrandTotal.Sub(d.AmountPaid)
}

// findItem returns the index of the line with the given local id, or -1.
func (d *Draft) findItem(itemID string) int {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// SetItems replaces the full line list. Lines without a product reference
// are dropped.
func (d *Draft) SetItems(items []Item) {
	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		if it.ID == "" {
			it.ID = id.New().String()
		}
		it.recalc()
		filtered = append(filtered, it)
	}
	d.Items = filtered
	d.recalcTotal()
}

// AddItem appends a line, or merges quantities when a line for the same
// product and stock variant already exists. Merging avoids duplicate rows
// when the operator re-selects the same catalog entry.
func (d *Draft) AddItem(item Item) {
	if item.ProductID == "" {
		return
	}

	for i := range d.Items {
		if d.Items[i].sameProduct(item) {
			d.Items[i].Quantity += item.Quantity
			d.Items[i].recalc()
			d.recalcTotal()
			return
		}
	}

	if item.ID == "" {
		item.ID = id.New().String()
	}
	item.recalc()
	d.Items = append(d.Items, item)
	d.recalcTotal()
}

// UpdateItem applies a merge-patch to the line with the matching id.
// If no line matches and the patch names a product, a new line is appended.
func (d *Draft) UpdateItem(patch ItemPatch) {
	idx := d.findItem(patch.ID)
	if idx < 0 {
		if patch.ProductID == nil || *patch.ProductID == "" {
			return
		}
		item := Item{ID: patch.ID}
		if item.ID == "" {
			item.ID = id.New().String()
		}
		d.Items = append(d.Items, item)
		idx = len(d.Items) - 1
	}

	it := &d.Items[idx]
	if patch.ProductID != nil {
		it.ProductID = *patch.ProductID
	}
	if patch.ProductStockID != nil {
		it.ProductStockID = *patch.ProductStockID
	}
	if patch.ProductName != nil {
		it.ProductName = *patch.ProductName
	}
	if patch.Quantity != nil && *patch.Quantity >= 0 {
		it.Quantity = *patch.Quantity
	}
	if patch.PurchasePrice != nil && !patch.PurchasePrice.IsNegative() {
		it.PurchasePrice = *patch.PurchasePrice
	}
	if patch.QuantityReceived != nil && *patch.QuantityReceived >= 0 {
		it.QuantityReceived = min(*patch.QuantityReceived, it.Quantity)
	}
	it.recalc()
	d.recalcTotal()
}

// RemoveItem deletes the line with the given local id. Unknown ids are ignored.
func (d *Draft) RemoveItem(itemID string) {
	idx := d.findItem(itemID)
	if idx < 0 {
		return
	}
	d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
	d.recalcTotal()
}

// UpdateItemQuantity sets a line's quantity. Negative values are ignored.
func (d *Draft) UpdateItemQuantity(itemID string, quantity float64) {
	idx := d.findItem(itemID)
	if idx < 0 || quantity < 0 {
		return
	}
	d.Items[idx].Quantity = quantity
	// Receiving progress can never exceed the ordered quantity
	if d.Items[idx].QuantityReceived > quantity {
		d.Items[idx].QuantityReceived = quantity
	}
	d.Items[idx].recalc()
	d.recalcTotal()
}

// UpdateItemPurchasePrice sets a line's unit price. Negative values are ignored.
func (d *Draft) UpdateItemPurchasePrice(itemID string, price types.Money) {
	idx := d.findItem(itemID)
	if idx < 0 || price.IsNegative() {
		return
	}
	d.Items[idx].PurchasePrice = price
	d.Items[idx].recalc()
	d.recalcTotal()
}

// UpdateItemReceivedQuantity records receiving progress for a line and derives
// its receive status. The received quantity is clamped to the ordered quantity.
func (d *Draft) UpdateItemReceivedQuantity(itemID string, received float64) {
	idx := d.findItem(itemID)
	if idx < 0 || received < 0 {
		return
	}
	it := &d.Items[idx]
	it.QuantityReceived = min(received, it.Quantity)
	it.recalc()
}

// SetSupplier binds the draft to a supplier by id.
func (d *Draft) SetSupplier(supplierID string) {
	d.SupplierID = supplierID
}

// SetSupplierDetails records display details of the bound supplier.
func (d *Draft) SetSupplierDetails(name string) {
	d.SupplierName = name
}

// SetPurchaseType sets the sourcing classification.
func (d *Draft) SetPurchaseType(t PurchaseType) {
	d.PurchaseType = t
}

// SetDraftReference records the backend-assigned draft reference.
func (d *Draft) SetDraftReference(ref string) {
	d.DraftReference = ref
}

// SetInvoiceNumber records the supplier invoice number.
func (d *Draft) SetInvoiceNumber(number string) {
	d.InvoiceNumber = number
}

// SetNotes sets the free-text notes.
func (d *Draft) SetNotes(notes string) {
	d.Notes = notes
}

// SetStatus sets the draft status string.
func (d *Draft) SetStatus(status string) {
	d.Status = status
}

// SetPaymentStatus sets the payment status directly, without touching amounts.
func (d *Draft) SetPaymentStatus(status PaymentStatus) {
	d.PaymentStatus = status
}

// UpdatePayment adds the given amount to the running paid total and derives
// AmountDue and PaymentStatus. Payments accumulate; they do not replace.
func (d *Draft) UpdatePayment(amount types.Money) {
	d.AmountPaid = d.AmountPaid.Add(amount)
	d.AmountDue = d.GrandTotal.Sub(d.AmountPaid)

	switch {
	case d.AmountPaid.GreaterThanOrEqual(d.GrandTotal):
		d.PaymentStatus = PaymentPaid
	case d.AmountPaid.GreaterThan(types.Zero()):
		d.PaymentStatus = PaymentPartial
	default:
		d.PaymentStatus = PaymentPending
	}
}

// Clone returns a deep copy of the draft.
func (d *Draft) Clone() *Draft {
	cp := *d
	cp.Items = make([]Item, len(d.Items))
	copy(cp.Items, d.Items)
	return &cp
}
