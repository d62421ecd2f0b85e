// Package salesreturn provides the SalesReturn document repository.
package salesreturn

import (
	"context"
	"time"

	"retailops/internal/core/id"
	"retailops/internal/domain"
)

// Repository defines operations for sales return documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *SalesReturn) error
	GetByID(ctx context.Context, docID id.ID) (*SalesReturn, error)
	GetByNumber(ctx context.Context, number string) (*SalesReturn, error)
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetReturnedLines(ctx context.Context, docID id.ID) ([]ReturnedLine, error)
	GetExchangeLines(ctx context.Context, docID id.ID) ([]ExchangeLine, error)
	SaveLines(ctx context.Context, docID id.ID, returned []ReturnedLine, exchanged []ExchangeLine) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*SalesReturn], error)
}

// ListFilter for filtering sales returns.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	StoreID  *id.ID
	OrderID  *id.ID
	ReasonID *string
	DateFrom *time.Time
	DateTo   *time.Time
}
