package dto

import (
	"github.com/shopspring/decimal"

	"retailops/internal/domain/drafts/purchase"
)

// The purchase draft aggregate carries its own JSON shape, so responses
// return the draft snapshot directly. Only requests need DTOs here.

// --- Item Requests ---

// DraftItemRequest is one line sent by the terminal when setting or adding items.
type DraftItemRequest struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId" binding:"required"`
	ProductStockID   string          `json:"productStockId"`
	ProductName      string          `json:"productName"`
	Quantity         float64         `json:"quantity"`
	PurchasePrice    decimal.Decimal `json:"purchasePrice"`
	QuantityReceived float64         `json:"quantityReceived"`
}

// ToItem converts the request to a draft line.
func (r *DraftItemRequest) ToItem() purchase.Item {
	return purchase.Item{
		ID:               r.ID,
		ProductID:        r.ProductID,
		ProductStockID:   r.ProductStockID,
		ProductName:      r.ProductName,
		Quantity:         r.Quantity,
		PurchasePrice:    r.PurchasePrice,
		QuantityReceived: r.QuantityReceived,
	}
}

// SetDraftItemsRequest replaces the full line list of a draft.
type SetDraftItemsRequest struct {
	Items []DraftItemRequest `json:"items" binding:"required"`
}

// ToItems converts the request lines.
func (r *SetDraftItemsRequest) ToItems() []purchase.Item {
	items := make([]purchase.Item, 0, len(r.Items))
	for i := range r.Items {
		items = append(items, r.Items[i].ToItem())
	}
	return items
}

// UpdateDraftItemRequest is a merge-patch for one draft line.
// Absent fields are left unchanged.
type UpdateDraftItemRequest struct {
	ProductID        *string          `json:"productId"`
	ProductStockID   *string          `json:"productStockId"`
	ProductName      *string          `json:"productName"`
	Quantity         *float64         `json:"quantity"`
	PurchasePrice    *decimal.Decimal `json:"purchasePrice"`
	QuantityReceived *float64         `json:"quantityReceived"`
}

// ToPatch converts the request to a draft line patch.
func (r *UpdateDraftItemRequest) ToPatch(itemID string) purchase.ItemPatch {
	return purchase.ItemPatch{
		ID:               itemID,
		ProductID:        r.ProductID,
		ProductStockID:   r.ProductStockID,
		ProductName:      r.ProductName,
		Quantity:         r.Quantity,
		PurchasePrice:    r.PurchasePrice,
		QuantityReceived: r.QuantityReceived,
	}
}

// UpdateItemQuantityRequest sets one line's quantity.
type UpdateItemQuantityRequest struct {
	Quantity *float64 `json:"quantity" binding:"required"`
}

// UpdateItemPriceRequest sets one line's unit price.
type UpdateItemPriceRequest struct {
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"required"`
}

// UpdateItemReceivedRequest records receiving progress for one line.
type UpdateItemReceivedRequest struct {
	QuantityReceived *float64 `json:"quantityReceived" binding:"required"`
}

// --- Header Requests ---

// SetSupplierRequest binds the draft to a supplier.
type SetSupplierRequest struct {
	SupplierID string `json:"supplierId"`
}

// SetSupplierDetailsRequest records display details of the bound supplier.
type SetSupplierDetailsRequest struct {
	SupplierName string `json:"supplierName"`
}

// SetPurchaseTypeRequest sets the sourcing classification.
type SetPurchaseTypeRequest struct {
	PurchaseType string `json:"purchaseType" binding:"required"`
}

// SetDraftReferenceRequest records the backend-assigned draft reference.
type SetDraftReferenceRequest struct {
	DraftReference string `json:"draftReference"`
}

// SetInvoiceNumberRequest records the supplier invoice number.
type SetInvoiceNumberRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// SetNotesRequest sets the free-text notes.
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// SetStatusRequest sets the draft status string.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetPaymentStatusRequest sets the payment status without touching amounts.
type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// UpdatePaymentRequest accumulates a payment on the draft.
type UpdatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
