package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"retailops/internal/domain/drafts/orderreturn"
)

// Like the purchase draft, the return session aggregate defines its own
// JSON shape; responses return the session snapshot directly.

// --- Session Requests ---

// SetReturnOrderRequest starts a session against an order by id only.
type SetReturnOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// OrderLineRequest is one line of the original order being snapshotted.
type OrderLineRequest struct {
	OrderItemID string          `json:"orderItemId" binding:"required"`
	ProductID   string          `json:"productId" binding:"required"`
	ProductName string          `json:"productName"`
	Quantity    float64         `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// InitReturnSessionRequest snapshots the original order and derives
// returnable lines.
type InitReturnSessionRequest struct {
	OrderID string             `json:"orderId" binding:"required"`
	Number  string             `json:"number"`
	Date    *time.Time         `json:"date"`
	Lines   []OrderLineRequest `json:"lines" binding:"required"`
}

// ToSnapshot converts the request to an order snapshot.
func (r *InitReturnSessionRequest) ToSnapshot() orderreturn.OrderSnapshot {
	snapshot := orderreturn.OrderSnapshot{
		OrderID: r.OrderID,
		Number:  r.Number,
		Lines:   make([]orderreturn.OrderLine, 0, len(r.Lines)),
	}
	if r.Date != nil {
		snapshot.Date = *r.Date
	}
	for _, line := range r.Lines {
		snapshot.Lines = append(snapshot.Lines, orderreturn.OrderLine{
			OrderItemID: line.OrderItemID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Rate:        line.Rate,
		})
	}
	return snapshot
}

// UpdateReturnQuantityRequest sets how much of a line is being returned.
type UpdateReturnQuantityRequest struct {
	Quantity *float64 `json:"quantity" binding:"required"`
}

// SetReturnReasonRequest records the transaction-level reason/notes pair.
type SetReturnReasonRequest struct {
	ReasonID string `json:"reasonId"`
	Notes    string `json:"notes"`
}

// --- Exchange Requests ---

// AddExchangeItemRequest adds a replacement product to the session.
type AddExchangeItemRequest struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"productId" binding:"required"`
	StockID           string          `json:"stockId"`
	ProductName       string          `json:"productName"`
	Quantity          float64         `json:"quantity"`
	Rate              decimal.Decimal `json:"rate"`
	IsWholesale       bool            `json:"isWholesale"`
	SerialNumbers     []string        `json:"serialNumbers"`
	WarrantyID        string          `json:"warrantyId"`
	AvailableQuantity float64         `json:"availableQuantity"`
}

// ToItem converts the request to an exchange line.
func (r *AddExchangeItemRequest) ToItem() orderreturn.ExchangeItem {
	return orderreturn.ExchangeItem{
		ID:                r.ID,
		ProductID:         r.ProductID,
		StockID:           r.StockID,
		ProductName:       r.ProductName,
		Quantity:          r.Quantity,
		Rate:              r.Rate,
		IsWholesale:       r.IsWholesale,
		SerialNumbers:     r.SerialNumbers,
		WarrantyID:        r.WarrantyID,
		AvailableQuantity: r.AvailableQuantity,
	}
}

// UpdateExchangeItemRequest is a merge-patch for one exchange line.
// Absent fields are left unchanged.
type UpdateExchangeItemRequest struct {
	Quantity      *float64         `json:"quantity"`
	Rate          *decimal.Decimal `json:"rate"`
	IsWholesale   *bool            `json:"isWholesale"`
	SerialNumbers []string         `json:"serialNumbers"`
	WarrantyID    *string          `json:"warrantyId"`
}

// ToPatch converts the request to an exchange line patch.
func (r *UpdateExchangeItemRequest) ToPatch(itemID string) orderreturn.ExchangeItemPatch {
	return orderreturn.ExchangeItemPatch{
		ID:            itemID,
		Quantity:      r.Quantity,
		Rate:          r.Rate,
		IsWholesale:   r.IsWholesale,
		SerialNumbers: r.SerialNumbers,
		WarrantyID:    r.WarrantyID,
	}
}
