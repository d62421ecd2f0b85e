package store

import (
	"context"

	"retailops/internal/domain"
)

// Repository defines the interface for Store persistence.
type Repository interface {
	domain.CatalogRepository[*Store]

	// ClearDefault clears the default flag on all stores (before setting a new default).
	ClearDefault(ctx context.Context) error
}
