// Package reports provides report generation services.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"retailops/internal/core/id"
)

// --- Purchase Journal ---

// PurchaseJournalFilter defines filter for the purchase journal.
type PurchaseJournalFilter struct {
	// Period
	FromDate *time.Time
	ToDate   *time.Time

	// Filters
	StoreIDs    []id.ID
	SupplierIDs []id.ID
	Statuses    []string

	// Sorting
	SortBy    string // date, number, grand_total
	SortOrder string // asc, desc

	// Pagination
	Limit  int
	Offset int
}

// PurchaseJournalRow is one purchase order in the journal.
type PurchaseJournalRow struct {
	DocumentID    id.ID           `json:"documentId"`
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	StoreID       id.ID           `json:"storeId"`
	StoreName     string          `json:"storeName"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	LineCount     int             `json:"lineCount"`
}

// PurchaseJournal is the full purchase journal report.
type PurchaseJournal struct {
	Rows       []PurchaseJournalRow `json:"rows"`
	TotalRows  int64                `json:"totalRows"`
	TotalValue decimal.Decimal      `json:"totalValue"`
	TotalDue   decimal.Decimal      `json:"totalDue"`
}

// --- Returns Journal ---

// ReturnsJournalFilter defines filter for the returns journal.
type ReturnsJournalFilter struct {
	// Period
	FromDate *time.Time
	ToDate   *time.Time

	// Filters
	StoreIDs  []id.ID
	ReasonIDs []string

	// Sorting
	SortBy    string
	SortOrder string

	// Pagination
	Limit  int
	Offset int
}

// ReturnsJournalRow is one sales return in the journal.
type ReturnsJournalRow struct {
	DocumentID    id.ID           `json:"documentId"`
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	StoreID       id.ID           `json:"storeId"`
	StoreName     string          `json:"storeName"`
	OrderNumber   string          `json:"orderNumber,omitempty"`
	ReasonID      string          `json:"reasonId,omitempty"`
	ReturnTotal   decimal.Decimal `json:"returnTotal"`
	ExchangeTotal decimal.Decimal `json:"exchangeTotal"`
	RefundTotal   decimal.Decimal `json:"refundTotal"`
}

// ReturnsJournal is the full returns journal report.
type ReturnsJournal struct {
	Rows        []ReturnsJournalRow `json:"rows"`
	TotalRows   int64               `json:"totalRows"`
	TotalRefund decimal.Decimal     `json:"totalRefund"`
}

// --- Stock Balance ---

// StockBalanceFilter defines filter for the stock balance report.
type StockBalanceFilter struct {
	// AsOfDate - report date (defaults to now)
	AsOfDate *time.Time

	// Filters
	StoreIDs   []id.ID
	ProductIDs []id.ID

	// Exclude zero balances
	ExcludeZero bool

	// Pagination
	Limit  int
	Offset int
}

// StockBalanceRow is a single row in the stock balance report.
type StockBalanceRow struct {
	StoreID     id.ID           `json:"storeId"`
	StoreName   string          `json:"storeName"`
	ProductID   id.ID           `json:"productId"`
	ProductName string          `json:"productName"`
	ProductSKU  string          `json:"productSku,omitempty"`
	UnitName    string          `json:"unitName,omitempty"`
	Quantity    float64         `json:"quantity"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// StockBalanceReport is the full stock balance report.
type StockBalanceReport struct {
	AsOfDate   time.Time         `json:"asOfDate"`
	Rows       []StockBalanceRow `json:"rows"`
	TotalRows  int               `json:"totalRows"`
	TotalValue decimal.Decimal   `json:"totalValue"`
}
