package product

import (
	"context"

	"retailops/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByBarcode retrieves a product by exact barcode match.
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindBySKU retrieves a product by exact SKU match.
	FindBySKU(ctx context.Context, sku string) (*Product, error)
}

// Cache is an optional read-through cache for barcode lookups at the POS.
// Implementations live in infrastructure (Redis).
type Cache interface {
	// GetByBarcode returns the cached product or nil on miss.
	GetByBarcode(ctx context.Context, barcode string) (*Product, error)

	// Put stores a product under its barcode.
	Put(ctx context.Context, p *Product) error

	// Invalidate drops the cached entry for a barcode.
	Invalidate(ctx context.Context, barcode string) error
}
