package reports

import (
	"context"
	"fmt"
	"time"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func clampPagination(limit *int, def, max int) {
	if *limit <= 0 {
		*limit = def
	}
	if *limit > max {
		*limit = max
	}
}

// GetPurchaseJournal returns the purchase order journal.
func (s *Service) GetPurchaseJournal(ctx context.Context, filter PurchaseJournalFilter) (*PurchaseJournal, error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return nil, fmt.Errorf("fromDate must be before toDate")
	}

	clampPagination(&filter.Limit, 50, 500)
	if filter.SortBy == "" {
		filter.SortBy = "date"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	journal, err := s.repo.GetPurchaseJournal(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get purchase journal: %w", err)
	}
	return journal, nil
}

// GetReturnsJournal returns the sales return journal.
func (s *Service) GetReturnsJournal(ctx context.Context, filter ReturnsJournalFilter) (*ReturnsJournal, error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return nil, fmt.Errorf("fromDate must be before toDate")
	}

	clampPagination(&filter.Limit, 50, 500)
	if filter.SortBy == "" {
		filter.SortBy = "date"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	journal, err := s.repo.GetReturnsJournal(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get returns journal: %w", err)
	}
	return journal, nil
}

// GetStockBalance returns stock on hand per store and product.
func (s *Service) GetStockBalance(ctx context.Context, filter StockBalanceFilter) (*StockBalanceReport, error) {
	if filter.AsOfDate == nil {
		now := time.Now()
		filter.AsOfDate = &now
	}

	clampPagination(&filter.Limit, 100, 1000)

	report, err := s.repo.GetStockBalance(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return report, nil
}
