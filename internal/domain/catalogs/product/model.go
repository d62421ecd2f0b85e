// Package product provides the Product catalog.
// Products are the sellable and purchasable items of the chain, optionally
// split into stock variants and optionally tracked by serial numbers.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"retailops/internal/core/apperror"
	"retailops/internal/core/entity"
)

// Product represents a catalog item sold or purchased by the chain.
type Product struct {
	entity.Catalog

	// SKU is the stock keeping unit (unique)
	SKU *string `db:"sku" json:"sku,omitempty"`

	// Barcode is the item barcode (EAN-13, etc.)
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// UnitName is the unit of measure display name (pcs, kg, ...)
	UnitName string `db:"unit_name" json:"unitName,omitempty"`

	// SalePrice is the default retail price
	SalePrice decimal.Decimal `db:"sale_price" json:"salePrice"`

	// WholesalePrice is the price applied when IsWholesale is selected on a line
	WholesalePrice decimal.Decimal `db:"wholesale_price" json:"wholesalePrice"`

	// PurchasePrice is the default cost used to prefill purchase drafts
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchasePrice"`

	// TrackSerial indicates if individual units carry serial numbers
	TrackSerial bool `db:"track_serial" json:"trackSerial"`

	// IsActive indicates if the product can appear on new documents
	IsActive bool `db:"is_active" json:"isActive"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`

	// ImageURL is the item image URL
	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string) *Product {
	return &Product{
		Catalog:        entity.NewCatalog(code, name),
		SalePrice:      decimal.Zero,
		WholesalePrice: decimal.Zero,
		PurchasePrice:  decimal.Zero,
		IsActive:       true,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.SalePrice.IsNegative() {
		return apperror.NewValidation("sale price cannot be negative").
			WithDetail("field", "salePrice")
	}

	if p.WholesalePrice.IsNegative() {
		return apperror.NewValidation("wholesale price cannot be negative").
			WithDetail("field", "wholesalePrice")
	}

	if p.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price cannot be negative").
			WithDetail("field", "purchasePrice")
	}

	return nil
}

// PriceFor returns the applicable unit price for a sale line.
func (p *Product) PriceFor(wholesale bool) decimal.Decimal {
	if wholesale && p.WholesalePrice.IsPositive() {
		return p.WholesalePrice
	}
	return p.SalePrice
}

// IsSellable returns true if the product can be placed on new documents.
func (p *Product) IsSellable() bool {
	return p.IsActive && !p.IsFolder && !p.DeletionMark
}
