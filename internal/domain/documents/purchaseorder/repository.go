// Package purchaseorder provides the PurchaseOrder document repository.
package purchaseorder

import (
	"context"
	"time"

	"retailops/internal/core/id"
	"retailops/internal/domain"
	"retailops/internal/domain/drafts/purchase"
)

// Repository defines operations for purchase order documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *PurchaseOrder) error
	GetByID(ctx context.Context, docID id.ID) (*PurchaseOrder, error)
	GetByNumber(ctx context.Context, number string) (*PurchaseOrder, error)
	Update(ctx context.Context, doc *PurchaseOrder) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseOrder], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*PurchaseOrder, error)
}

// ListFilter for filtering purchase orders.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	StoreID       *id.ID
	SupplierID    *id.ID
	Status        *purchase.ReceiveStatus
	PaymentStatus *purchase.PaymentStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}
