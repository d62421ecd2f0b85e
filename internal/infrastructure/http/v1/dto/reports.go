package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"retailops/internal/domain/reports"
)

// --- Purchase Journal ---

// PurchaseJournalRequest represents request for the purchase journal.
type PurchaseJournalRequest struct {
	FromDate    *string  `form:"fromDate"`
	ToDate      *string  `form:"toDate"`
	StoreIDs    []string `form:"storeId"`
	SupplierIDs []string `form:"supplierId"`
	Statuses    []string `form:"status"`
	SortBy      string   `form:"sortBy"`
	SortOrder   string   `form:"sortOrder"`
	Limit       int      `form:"limit"`
	Offset      int      `form:"offset"`
}

// PurchaseJournalRowResponse is one purchase order in the journal.
type PurchaseJournalRowResponse struct {
	DocumentID    string          `json:"documentId"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	StoreID       string          `json:"storeId"`
	StoreName     string          `json:"storeName"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	LineCount     int             `json:"lineCount"`
}

// PurchaseJournalResponse represents the purchase journal response.
type PurchaseJournalResponse struct {
	Rows       []PurchaseJournalRowResponse `json:"rows"`
	TotalRows  int64                        `json:"totalRows"`
	TotalValue decimal.Decimal              `json:"totalValue"`
	TotalDue   decimal.Decimal              `json:"totalDue"`
}

// FromPurchaseJournal converts domain journal to response DTO.
func FromPurchaseJournal(j *reports.PurchaseJournal) *PurchaseJournalResponse {
	resp := &PurchaseJournalResponse{
		Rows:       make([]PurchaseJournalRowResponse, len(j.Rows)),
		TotalRows:  j.TotalRows,
		TotalValue: j.TotalValue,
		TotalDue:   j.TotalDue,
	}
	for i, row := range j.Rows {
		resp.Rows[i] = PurchaseJournalRowResponse{
			DocumentID:    row.DocumentID.String(),
			Number:        row.Number,
			Date:          row.Date.Format(time.RFC3339),
			StoreID:       row.StoreID.String(),
			StoreName:     row.StoreName,
			SupplierName:  row.SupplierName,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			GrandTotal:    row.GrandTotal,
			AmountDue:     row.AmountDue,
			LineCount:     row.LineCount,
		}
	}
	return resp
}

// --- Returns Journal ---

// ReturnsJournalRequest represents request for the returns journal.
type ReturnsJournalRequest struct {
	FromDate  *string  `form:"fromDate"`
	ToDate    *string  `form:"toDate"`
	StoreIDs  []string `form:"storeId"`
	ReasonIDs []string `form:"reasonId"`
	SortBy    string   `form:"sortBy"`
	SortOrder string   `form:"sortOrder"`
	Limit     int      `form:"limit"`
	Offset    int      `form:"offset"`
}

// ReturnsJournalRowResponse is one sales return in the journal.
type ReturnsJournalRowResponse struct {
	DocumentID    string          `json:"documentId"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	StoreID       string          `json:"storeId"`
	StoreName     string          `json:"storeName"`
	OrderNumber   string          `json:"orderNumber,omitempty"`
	ReasonID      string          `json:"reasonId,omitempty"`
	ReturnTotal   decimal.Decimal `json:"returnTotal"`
	ExchangeTotal decimal.Decimal `json:"exchangeTotal"`
	RefundTotal   decimal.Decimal `json:"refundTotal"`
}

// ReturnsJournalResponse represents the returns journal response.
type ReturnsJournalResponse struct {
	Rows        []ReturnsJournalRowResponse `json:"rows"`
	TotalRows   int64                       `json:"totalRows"`
	TotalRefund decimal.Decimal             `json:"totalRefund"`
}

// FromReturnsJournal converts domain journal to response DTO.
func FromReturnsJournal(j *reports.ReturnsJournal) *ReturnsJournalResponse {
	resp := &ReturnsJournalResponse{
		Rows:        make([]ReturnsJournalRowResponse, len(j.Rows)),
		TotalRows:   j.TotalRows,
		TotalRefund: j.TotalRefund,
	}
	for i, row := range j.Rows {
		resp.Rows[i] = ReturnsJournalRowResponse{
			DocumentID:    row.DocumentID.String(),
			Number:        row.Number,
			Date:          row.Date.Format(time.RFC3339),
			StoreID:       row.StoreID.String(),
			StoreName:     row.StoreName,
			OrderNumber:   row.OrderNumber,
			ReasonID:      row.ReasonID,
			ReturnTotal:   row.ReturnTotal,
			ExchangeTotal: row.ExchangeTotal,
			RefundTotal:   row.RefundTotal,
		}
	}
	return resp
}

// --- Stock Balance ---

// StockBalanceReportRequest represents request for the stock balance report.
type StockBalanceReportRequest struct {
	AsOfDate    *time.Time `form:"asOfDate"`
	StoreIDs    []string   `form:"storeId"`
	ProductIDs  []string   `form:"productId"`
	ExcludeZero *bool      `form:"excludeZero"`
	Limit       int        `form:"limit"`
	Offset      int        `form:"offset"`
}

// StockBalanceRowResponse represents a single row in the stock balance report.
type StockBalanceRowResponse struct {
	StoreID     string          `json:"storeId"`
	StoreName   string          `json:"storeName"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductSKU  string          `json:"productSku,omitempty"`
	UnitName    string          `json:"unitName,omitempty"`
	Quantity    float64         `json:"quantity"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// StockBalanceReportResponse represents the stock balance report response.
type StockBalanceReportResponse struct {
	AsOfDate   string                    `json:"asOfDate"`
	Rows       []StockBalanceRowResponse `json:"rows"`
	TotalRows  int                       `json:"totalRows"`
	TotalValue decimal.Decimal           `json:"totalValue"`
}

// FromStockBalanceReport converts domain report to response DTO.
func FromStockBalanceReport(r *reports.StockBalanceReport) *StockBalanceReportResponse {
	resp := &StockBalanceReportResponse{
		AsOfDate:   r.AsOfDate.Format(time.RFC3339),
		Rows:       make([]StockBalanceRowResponse, len(r.Rows)),
		TotalRows:  r.TotalRows,
		TotalValue: r.TotalValue,
	}
	for i, row := range r.Rows {
		resp.Rows[i] = StockBalanceRowResponse{
			StoreID:     row.StoreID.String(),
			StoreName:   row.StoreName,
			ProductID:   row.ProductID.String(),
			ProductName: row.ProductName,
			ProductSKU:  row.ProductSKU,
			UnitName:    row.UnitName,
			Quantity:    row.Quantity,
			TotalCost:   row.TotalCost,
		}
	}
	return resp
}
