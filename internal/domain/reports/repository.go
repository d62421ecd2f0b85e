package reports

import "context"

// Repository defines read-only queries backing the reports.
type Repository interface {
	GetPurchaseJournal(ctx context.Context, filter PurchaseJournalFilter) (*PurchaseJournal, error)
	GetReturnsJournal(ctx context.Context, filter ReturnsJournalFilter) (*ReturnsJournal, error)
	GetStockBalance(ctx context.Context, filter StockBalanceFilter) (*StockBalanceReport, error)
}
