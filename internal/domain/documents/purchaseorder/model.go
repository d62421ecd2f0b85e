// Package purchaseorder provides the PurchaseOrder document.
// A purchase order is created by submitting a store's purchase draft and
// then tracks receiving and payment progress against the supplier.
package purchaseorder

import (
	"context"

	"github.com/shopspring/decimal"

	"retailops/internal/core/apperror"
	"retailops/internal/core/entity"
	"retailops/internal/core/id"
	"retailops/internal/core/types"
	"retailops/internal/domain/drafts/purchase"
)

// PurchaseOrder represents a submitted purchase order.
type PurchaseOrder struct {
	entity.Document

	// Supplier reference; nil for walk-in and own purchases
	SupplierID   *id.ID `db:"supplier_id" json:"supplierId,omitempty"`
	SupplierName string `db:"supplier_name" json:"supplierName,omitempty"`

	// PurchaseType classifies the sourcing
	PurchaseType purchase.PurchaseType `db:"purchase_type" json:"purchaseType"`

	// InvoiceNumber is the supplier's invoice reference
	InvoiceNumber string `db:"invoice_number" json:"invoiceNumber,omitempty"`

	// DraftReference links back to the originating draft, if any
	DraftReference string `db:"draft_reference" json:"draftReference,omitempty"`

	// Status is derived from line receiving progress
	Status purchase.ReceiveStatus `db:"status" json:"status"`

	// Payment tracking
	PaymentStatus purchase.PaymentStatus `db:"payment_status" json:"paymentStatus"`
	GrandTotal    decimal.Decimal        `db:"grand_total" json:"grandTotal"`
	AmountPaid    decimal.Decimal        `db:"amount_paid" json:"amountPaid"`
	AmountDue     decimal.Decimal        `db:"amount_due" json:"amountDue"`

	// Table part: ordered goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one ordered product.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID      id.ID  `db:"product_id" json:"productId"`
	ProductStockID *id.ID `db:"product_stock_id" json:"productStockId,omitempty"`
	ProductName    string `db:"product_name" json:"productName,omitempty"`

	Quantity      float64         `db:"quantity" json:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	QuantityRecvd float64         `db:"quantity_received" json:"quantityReceived"`
	ReceiveStatus purchase.ReceiveStatus `db:"receive_status" json:"receiveStatus"`
}

// NewPurchaseOrder creates an empty purchase order for a store.
func NewPurchaseOrder(storeID string) *PurchaseOrder {
	return &PurchaseOrder{
		Document:      entity.NewDocument(storeID),
		PurchaseType:  purchase.PurchaseTypeSupplier,
		Status:        purchase.ReceiveOrdered,
		PaymentStatus: purchase.PaymentPending,
		GrandTotal:    decimal.Zero,
		AmountPaid:    decimal.Zero,
		AmountDue:     decimal.Zero,
		Lines:         make([]Line, 0),
	}
}

// FromDraft builds a purchase order from a store's draft.
// The draft must contain at least one line; supplier purchases must name
// a supplier.
func FromDraft(storeID id.ID, d *purchase.Draft) (*PurchaseOrder, error) {
	if d == nil || len(d.Items) == 0 {
		return nil, apperror.NewEmptyDraft(storeID.String())
	}

	doc := NewPurchaseOrder(storeID.String())
	doc.PurchaseType = d.PurchaseType
	doc.SupplierName = d.SupplierName
	doc.InvoiceNumber = d.InvoiceNumber
	doc.DraftReference = d.DraftReference
	doc.Comment = d.Notes

	if d.SupplierID != "" {
		supID, err := id.Parse(d.SupplierID)
		if err != nil {
			return nil, apperror.NewValidation("invalid supplier id").
				WithDetail("field", "supplierId").
				WithDetail("value", d.SupplierID)
		}
		doc.SupplierID = &supID
	} else if d.PurchaseType == purchase.PurchaseTypeSupplier {
		return nil, apperror.NewBusinessRule(
			apperror.CodeSupplierRequired,
			"A supplier purchase requires a supplier",
		)
	}

	for i, it := range d.Items {
		productID, err := id.Parse(it.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid product id").
				WithDetail("lineNo", i+1).
				WithDetail("value", it.ProductID)
		}
		line := Line{
			LineID:        id.New(),
			LineNo:        i + 1,
			ProductID:     productID,
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			UnitPrice:     it.PurchasePrice,
			Amount:        types.LineAmount(it.Quantity, it.PurchasePrice),
			QuantityRecvd: it.QuantityReceived,
			ReceiveStatus: it.ReceiveStatus,
		}
		if it.ProductStockID != "" {
			stockID, err := id.Parse(it.ProductStockID)
			if err != nil {
				return nil, apperror.NewValidation("invalid product stock id").
					WithDetail("lineNo", i+1).
					WithDetail("value", it.ProductStockID)
			}
			line.ProductStockID = &stockID
		}
		doc.Lines = append(doc.Lines, line)
	}

	doc.recalculate()
	doc.AmountPaid = d.AmountPaid
	doc.AmountDue = doc.GrandTotal.Sub(doc.AmountPaid)
	doc.derivePaymentStatus()

	return doc, nil
}

// ToDraft rebuilds the editable draft form of a persisted order so the
// operator can pull it back onto a terminal for correction.
func (p *PurchaseOrder) ToDraft() *purchase.Draft {
	d := purchase.NewDraft()
	d.PurchaseType = p.PurchaseType
	d.SupplierName = p.SupplierName
	d.InvoiceNumber = p.InvoiceNumber
	d.DraftReference = p.DraftReference
	d.Notes = p.Comment
	d.Status = string(p.Status)
	d.PaymentStatus = p.PaymentStatus
	d.AmountPaid = p.AmountPaid
	if p.SupplierID != nil {
		d.SupplierID = p.SupplierID.String()
	}

	items := make([]purchase.Item, 0, len(p.Lines))
	for _, line := range p.Lines {
		it := purchase.Item{
			ID:               line.LineID.String(),
			ProductID:        line.ProductID.String(),
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			PurchasePrice:    line.UnitPrice,
			QuantityReceived: line.QuantityRecvd,
		}
		if line.ProductStockID != nil {
			it.ProductStockID = line.ProductStockID.String()
		}
		items = append(items, it)
	}
	d.SetItems(items)

	return d
}

// recalculate updates totals and document status from lines.
func (p *PurchaseOrder) recalculate() {
	total := decimal.Zero
	allReceived := len(p.Lines) > 0
	anyReceived := false

	for i := range p.Lines {
		line := &p.Lines[i]
		line.Amount = types.LineAmount(line.Quantity, line.UnitPrice)
		total = total.Add(line.Amount)

		switch {
		case line.QuantityRecvd >= line.Quantity && line.Quantity > 0:
			line.ReceiveStatus = purchase.ReceiveReceived
			anyReceived = true
		case line.QuantityRecvd > 0:
			line.ReceiveStatus = purchase.ReceivePartiallyReceived
			anyReceived = true
			allReceived = false
		default:
			line.ReceiveStatus = purchase.ReceiveOrdered
			allReceived = false
		}
	}

	p.GrandTotal = total
	p.AmountDue = p.GrandTotal.Sub(p.AmountPaid)

	switch {
	case allReceived:
		p.Status = purchase.ReceiveReceived
	case anyReceived:
		p.Status = purchase.ReceivePartiallyReceived
	default:
		p.Status = purchase.ReceiveOrdered
	}
}

func (p *PurchaseOrder) derivePaymentStatus() {
	switch {
	case p.AmountPaid.GreaterThanOrEqual(p.GrandTotal):
		p.PaymentStatus = purchase.PaymentPaid
	case p.AmountPaid.IsPositive():
		p.PaymentStatus = purchase.PaymentPartial
	default:
		p.PaymentStatus = purchase.PaymentPending
	}
}

// ReceiveLine records received quantity on one line, clamped to the ordered
// quantity, and re-derives line and document status.
func (p *PurchaseOrder) ReceiveLine(lineID id.ID, received float64) error {
	if received < 0 {
		return apperror.NewValidation("received quantity cannot be negative").
			WithDetail("field", "quantityReceived")
	}
	for i := range p.Lines {
		if p.Lines[i].LineID != lineID {
			continue
		}
		if received > p.Lines[i].Quantity {
			received = p.Lines[i].Quantity
		}
		p.Lines[i].QuantityRecvd = received
		p.recalculate()
		p.Touch()
		return nil
	}
	return apperror.NewNotFound("purchase order line", lineID.String())
}

// RecordPayment accumulates a payment and re-derives the payment status.
func (p *PurchaseOrder) RecordPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperror.NewValidation("payment amount cannot be negative").
			WithDetail("field", "amount")
	}
	p.AmountPaid = p.AmountPaid.Add(amount)
	p.AmountDue = p.GrandTotal.Sub(p.AmountPaid)
	p.derivePaymentStatus()
	p.Touch()
	return nil
}

// Validate implements entity.Validatable.
func (p *PurchaseOrder) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if p.PurchaseType == purchase.PurchaseTypeSupplier && p.SupplierID == nil {
		return apperror.NewBusinessRule(
			apperror.CodeSupplierRequired,
			"A supplier purchase requires a supplier",
		)
	}

	if len(p.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range p.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}
