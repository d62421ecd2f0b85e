package dto

import (
	"github.com/shopspring/decimal"

	"retailops/internal/domain/documents/purchaseorder"
	"retailops/internal/domain/documents/salesreturn"
)

// --- Purchase Order ---

// PurchaseOrderLineResponse is one ordered product in a purchase order.
type PurchaseOrderLineResponse struct {
	LineID           string          `json:"lineId"`
	LineNo           int             `json:"lineNo"`
	ProductID        string          `json:"productId"`
	ProductStockID   *string         `json:"productStockId,omitempty"`
	ProductName      string          `json:"productName,omitempty"`
	Quantity         float64         `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Amount           decimal.Decimal `json:"amount"`
	QuantityReceived float64         `json:"quantityReceived"`
	ReceiveStatus    string          `json:"receiveStatus"`
}

// PurchaseOrderResponse is the response body for a purchase order document.
type PurchaseOrderResponse struct {
	DocumentResponse
	SupplierID     *string                     `json:"supplierId,omitempty"`
	SupplierName   string                      `json:"supplierName,omitempty"`
	PurchaseType   string                      `json:"purchaseType"`
	InvoiceNumber  string                      `json:"invoiceNumber,omitempty"`
	DraftReference string                      `json:"draftReference,omitempty"`
	Status         string                      `json:"status"`
	PaymentStatus  string                      `json:"paymentStatus"`
	GrandTotal     decimal.Decimal             `json:"grandTotal"`
	AmountPaid     decimal.Decimal             `json:"amountPaid"`
	AmountDue      decimal.Decimal             `json:"amountDue"`
	Lines          []PurchaseOrderLineResponse `json:"lines"`
}

// FromPurchaseOrder creates response DTO from domain document.
func FromPurchaseOrder(doc *purchaseorder.PurchaseOrder) *PurchaseOrderResponse {
	resp := &PurchaseOrderResponse{
		DocumentResponse: FromDocument(doc.Document),
		SupplierName:     doc.SupplierName,
		PurchaseType:     string(doc.PurchaseType),
		InvoiceNumber:    doc.InvoiceNumber,
		DraftReference:   doc.DraftReference,
		Status:           string(doc.Status),
		PaymentStatus:    string(doc.PaymentStatus),
		GrandTotal:       doc.GrandTotal,
		AmountPaid:       doc.AmountPaid,
		AmountDue:        doc.AmountDue,
		Lines:            make([]PurchaseOrderLineResponse, len(doc.Lines)),
	}

	if doc.SupplierID != nil {
		s := doc.SupplierID.String()
		resp.SupplierID = &s
	}

	for i, line := range doc.Lines {
		resp.Lines[i] = PurchaseOrderLineResponse{
			LineID:           line.LineID.String(),
			LineNo:           line.LineNo,
			ProductID:        line.ProductID.String(),
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice,
			Amount:           line.Amount,
			QuantityReceived: line.QuantityRecvd,
			ReceiveStatus:    string(line.ReceiveStatus),
		}
		if line.ProductStockID != nil {
			s := line.ProductStockID.String()
			resp.Lines[i].ProductStockID = &s
		}
	}

	return resp
}

// ReceiveLineRequest records received quantity on one line.
type ReceiveLineRequest struct {
	QuantityReceived *float64 `json:"quantityReceived" binding:"required"`
}

// RecordPaymentRequest accumulates a payment on the order.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// --- Sales Return ---

// ReturnedLineResponse is one returned product.
type ReturnedLineResponse struct {
	LineID           string          `json:"lineId"`
	LineNo           int             `json:"lineNo"`
	OrderItemID      string          `json:"orderItemId"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName,omitempty"`
	OriginalQuantity float64         `json:"originalQuantity"`
	ReturnQuantity   float64         `json:"returnQuantity"`
	Rate             decimal.Decimal `json:"rate"`
	Amount           decimal.Decimal `json:"amount"`
}

// ExchangeLineResponse is one replacement product handed out in exchange.
type ExchangeLineResponse struct {
	LineID        string          `json:"lineId"`
	LineNo        int             `json:"lineNo"`
	ProductID     string          `json:"productId"`
	StockID       *string         `json:"stockId,omitempty"`
	ProductName   string          `json:"productName,omitempty"`
	Quantity      float64         `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	IsWholesale   bool            `json:"isWholesale"`
	SerialNumbers []string        `json:"serialNumbers,omitempty"`
	WarrantyID    string          `json:"warrantyId,omitempty"`
}

// SalesReturnResponse is the response body for a sales return document.
type SalesReturnResponse struct {
	DocumentResponse
	OrderID        string                 `json:"orderId"`
	OrderNumber    string                 `json:"orderNumber,omitempty"`
	ReturnReasonID string                 `json:"returnReasonId,omitempty"`
	ReturnNotes    string                 `json:"returnNotes,omitempty"`
	ReturnTotal    decimal.Decimal        `json:"returnTotal"`
	ExchangeTotal  decimal.Decimal        `json:"exchangeTotal"`
	RefundTotal    decimal.Decimal        `json:"refundTotal"`
	ReturnedLines  []ReturnedLineResponse `json:"returnedLines"`
	ExchangeLines  []ExchangeLineResponse `json:"exchangeLines"`
}

// FromSalesReturn creates response DTO from domain document.
func FromSalesReturn(doc *salesreturn.SalesReturn) *SalesReturnResponse {
	resp := &SalesReturnResponse{
		DocumentResponse: FromDocument(doc.Document),
		OrderID:          doc.OrderID.String(),
		OrderNumber:      doc.OrderNumber,
		ReturnReasonID:   doc.ReturnReasonID,
		ReturnNotes:      doc.ReturnNotes,
		ReturnTotal:      doc.ReturnTotal,
		ExchangeTotal:    doc.ExchangeTotal,
		RefundTotal:      doc.RefundTotal,
		ReturnedLines:    make([]ReturnedLineResponse, len(doc.ReturnedLines)),
		ExchangeLines:    make([]ExchangeLineResponse, len(doc.ExchangeLines)),
	}

	for i, line := range doc.ReturnedLines {
		resp.ReturnedLines[i] = ReturnedLineResponse{
			LineID:           line.LineID.String(),
			LineNo:           line.LineNo,
			OrderItemID:      line.OrderItemID,
			ProductID:        line.ProductID.String(),
			ProductName:      line.ProductName,
			OriginalQuantity: line.OriginalQuantity,
			ReturnQuantity:   line.ReturnQuantity,
			Rate:             line.Rate,
			Amount:           line.Amount,
		}
	}

	for i, line := range doc.ExchangeLines {
		resp.ExchangeLines[i] = ExchangeLineResponse{
			LineID:        line.LineID.String(),
			LineNo:        line.LineNo,
			ProductID:     line.ProductID.String(),
			ProductName:   line.ProductName,
			Quantity:      line.Quantity,
			Rate:          line.Rate,
			Amount:        line.Amount,
			IsWholesale:   line.IsWholesale,
			SerialNumbers: line.SerialNumbers,
			WarrantyID:    line.WarrantyID,
		}
		if line.StockID != nil {
			s := line.StockID.String()
			resp.ExchangeLines[i].StockID = &s
		}
	}

	return resp
}
