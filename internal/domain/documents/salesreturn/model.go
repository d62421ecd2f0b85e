// Package salesreturn provides the SalesReturn document.
// A sales return is created by submitting a store's return/exchange session
// and records the returned lines, any exchange lines, and the net refund.
package salesreturn

import (
	"context"

	"github.com/shopspring/decimal"

	"retailops/internal/core/apperror"
	"retailops/internal/core/entity"
	"retailops/internal/core/id"
	"retailops/internal/core/types"
	"retailops/internal/domain/drafts/orderreturn"
)

// SalesReturn represents a completed return/exchange transaction.
type SalesReturn struct {
	entity.Document

	// OrderID references the original sales order being returned against
	OrderID     id.ID  `db:"order_id" json:"orderId"`
	OrderNumber string `db:"order_number" json:"orderNumber,omitempty"`

	// One reason/notes pair covers the whole transaction
	ReturnReasonID string `db:"return_reason_id" json:"returnReasonId,omitempty"`
	ReturnNotes    string `db:"return_notes" json:"returnNotes,omitempty"`

	// Totals
	ReturnTotal   decimal.Decimal `db:"return_total" json:"returnTotal"`
	ExchangeTotal decimal.Decimal `db:"exchange_total" json:"exchangeTotal"`

	// RefundTotal is what the customer gets back: returned value minus the
	// value of replacement goods. Negative means the customer owes the
	// difference.
	RefundTotal decimal.Decimal `db:"refund_total" json:"refundTotal"`

	// Table parts
	ReturnedLines []ReturnedLine `db:"-" json:"returnedLines"`
	ExchangeLines []ExchangeLine `db:"-" json:"exchangeLines"`
}

// ReturnedLine is one returned product, tied to the original order line.
type ReturnedLine struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	OrderItemID string `db:"order_item_id" json:"orderItemId"`
	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductName string `db:"product_name" json:"productName,omitempty"`

	OriginalQuantity float64         `db:"original_quantity" json:"originalQuantity"`
	ReturnQuantity   float64         `db:"return_quantity" json:"returnQuantity"`
	Rate             decimal.Decimal `db:"rate" json:"rate"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
}

// ExchangeLine is one replacement product handed out in exchange.
type ExchangeLine struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID   id.ID  `db:"product_id" json:"productId"`
	StockID     *id.ID `db:"stock_id" json:"stockId,omitempty"`
	ProductName string `db:"product_name" json:"productName,omitempty"`

	Quantity      float64         `db:"quantity" json:"quantity"`
	Rate          decimal.Decimal `db:"rate" json:"rate"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	IsWholesale   bool            `db:"is_wholesale" json:"isWholesale"`
	SerialNumbers []string        `db:"serial_numbers" json:"serialNumbers,omitempty"`
	WarrantyID    string          `db:"warranty_id" json:"warrantyId,omitempty"`
}

// NewSalesReturn creates an empty sales return for a store.
func NewSalesReturn(storeID string) *SalesReturn {
	return &SalesReturn{
		Document:      entity.NewDocument(storeID),
		ReturnTotal:   decimal.Zero,
		ExchangeTotal: decimal.Zero,
		RefundTotal:   decimal.Zero,
		ReturnedLines: make([]ReturnedLine, 0),
		ExchangeLines: make([]ExchangeLine, 0),
	}
}

// FromSession builds a sales return from a store's return/exchange session.
// Lines with nothing selected for return are dropped; the session must end
// up with at least one returned or exchange line.
func FromSession(storeID id.ID, d *orderreturn.Draft) (*SalesReturn, error) {
	if d == nil || d.OrderID == "" {
		return nil, apperror.NewBusinessRule(
			apperror.CodeNoReturnSession,
			"No return session is active for this store",
		).WithDetail("store_id", storeID.String())
	}

	orderID, err := id.Parse(d.OrderID)
	if err != nil {
		return nil, apperror.NewValidation("invalid order id").
			WithDetail("field", "orderId").
			WithDetail("value", d.OrderID)
	}

	doc := NewSalesReturn(storeID.String())
	doc.OrderID = orderID
	doc.ReturnReasonID = d.ReturnReasonID
	doc.ReturnNotes = d.ReturnNotes
	if d.Order != nil {
		doc.OrderNumber = d.Order.Number
	}

	lineNo := 0
	for _, it := range d.ReturnItems {
		if it.ReturnQuantity <= 0 {
			continue
		}
		productID, err := id.Parse(it.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid product id").
				WithDetail("field", "returnItems").
				WithDetail("value", it.ProductID)
		}
		lineNo++
		doc.ReturnedLines = append(doc.ReturnedLines, ReturnedLine{
			LineID:           id.New(),
			LineNo:           lineNo,
			OrderItemID:      it.OrderItemID,
			ProductID:        productID,
			ProductName:      it.ProductName,
			OriginalQuantity: it.OriginalQuantity,
			ReturnQuantity:   it.ReturnQuantity,
			Rate:             it.Rate,
			Amount:           types.LineAmount(it.ReturnQuantity, it.Rate),
		})
	}

	for i, ex := range d.ExchangeItems {
		productID, err := id.Parse(ex.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid product id").
				WithDetail("field", "exchangeItems").
				WithDetail("value", ex.ProductID)
		}
		line := ExchangeLine{
			LineID:        id.New(),
			LineNo:        i + 1,
			ProductID:     productID,
			ProductName:   ex.ProductName,
			Quantity:      ex.Quantity,
			Rate:          ex.Rate,
			Amount:        types.LineAmount(ex.Quantity, ex.Rate),
			IsWholesale:   ex.IsWholesale,
			SerialNumbers: append([]string(nil), ex.SerialNumbers...),
			WarrantyID:    ex.WarrantyID,
		}
		if ex.StockID != "" {
			stockID, err := id.Parse(ex.StockID)
			if err != nil {
				return nil, apperror.NewValidation("invalid stock id").
					WithDetail("field", "exchangeItems").
					WithDetail("value", ex.StockID)
			}
			line.StockID = &stockID
		}
		doc.ExchangeLines = append(doc.ExchangeLines, line)
	}

	if len(doc.ReturnedLines) == 0 && len(doc.ExchangeLines) == 0 {
		return nil, apperror.NewBusinessRule(
			apperror.CodeEmptyDraft,
			"Nothing selected for return or exchange",
		).WithDetail("store_id", storeID.String())
	}

	doc.recalculate()
	return doc, nil
}

// recalculate updates the three totals from the line lists.
func (r *SalesReturn) recalculate() {
	returned := decimal.Zero
	for i := range r.ReturnedLines {
		line := &r.ReturnedLines[i]
		line.Amount = types.LineAmount(line.ReturnQuantity, line.Rate)
		returned = returned.Add(line.Amount)
	}

	exchanged := decimal.Zero
	for i := range r.ExchangeLines {
		line := &r.ExchangeLines[i]
		line.Amount = types.LineAmount(line.Quantity, line.Rate)
		exchanged = exchanged.Add(line.Amount)
	}

	r.ReturnTotal = returned
	r.ExchangeTotal = exchanged
	r.RefundTotal = returned.Sub(exchanged)
}

// Validate implements entity.Validatable.
func (r *SalesReturn) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.OrderID) {
		return apperror.NewValidation("original order is required").
			WithDetail("field", "orderId")
	}

	if len(r.ReturnedLines) == 0 && len(r.ExchangeLines) == 0 {
		return apperror.NewValidation("at least one returned or exchange line is required").
			WithDetail("field", "lines")
	}

	for _, line := range r.ReturnedLines {
		if line.ReturnQuantity <= 0 || line.ReturnQuantity > line.OriginalQuantity {
			return apperror.NewValidation("return quantity out of range").
				WithDetail("field", "returnedLines").
				WithDetail("lineNo", line.LineNo)
		}
	}

	for _, line := range r.ExchangeLines {
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "exchangeLines").
				WithDetail("lineNo", line.LineNo)
		}
		// One serial per physical unit
		if len(line.SerialNumbers) > 0 && float64(len(line.SerialNumbers)) != line.Quantity {
			return apperror.NewValidation("serial count must match quantity").
				WithDetail("field", "exchangeLines").
				WithDetail("lineNo", line.LineNo)
		}
	}

	return nil
}
