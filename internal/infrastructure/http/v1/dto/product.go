package dto

import (
	"github.com/shopspring/decimal"

	"retailops/internal/core/entity"
	"retailops/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code           string            `json:"code"`
	Name           string            `json:"name" binding:"required"`
	SKU            *string           `json:"sku"`
	Barcode        *string           `json:"barcode"`
	UnitName       string            `json:"unitName"`
	SalePrice      decimal.Decimal   `json:"salePrice"`
	WholesalePrice decimal.Decimal   `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal   `json:"purchasePrice"`
	TrackSerial    bool              `json:"trackSerial"`
	IsActive       *bool             `json:"isActive"`
	Description    *string           `json:"description"`
	ImageURL       *string           `json:"imageUrl"`
	ParentID       *string           `json:"parentId"`
	IsFolder       bool              `json:"isFolder"`
	Attributes     entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name)
	p.SKU = r.SKU
	p.Barcode = r.Barcode
	p.UnitName = r.UnitName
	p.SalePrice = r.SalePrice
	p.WholesalePrice = r.WholesalePrice
	p.PurchasePrice = r.PurchasePrice
	p.TrackSerial = r.TrackSerial
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	p.Description = r.Description
	p.ImageURL = r.ImageURL
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Attributes = r.Attributes
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code           string            `json:"code"`
	Name           string            `json:"name" binding:"required"`
	SKU            *string           `json:"sku,omitempty"`
	Barcode        *string           `json:"barcode,omitempty"`
	UnitName       string            `json:"unitName"`
	SalePrice      decimal.Decimal   `json:"salePrice"`
	WholesalePrice decimal.Decimal   `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal   `json:"purchasePrice"`
	TrackSerial    bool              `json:"trackSerial"`
	IsActive       bool              `json:"isActive"`
	Description    *string           `json:"description,omitempty"`
	ImageURL       *string           `json:"imageUrl,omitempty"`
	ParentID       *string           `json:"parentId,omitempty"`
	IsFolder       bool              `json:"isFolder"`
	Attributes     entity.Attributes `json:"attributes"`
	Version        int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.SKU = r.SKU
	p.Barcode = r.Barcode
	p.UnitName = r.UnitName
	p.SalePrice = r.SalePrice
	p.WholesalePrice = r.WholesalePrice
	p.PurchasePrice = r.PurchasePrice
	p.TrackSerial = r.TrackSerial
	p.IsActive = r.IsActive
	p.Description = r.Description
	p.ImageURL = r.ImageURL
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Attributes = r.Attributes
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID             string            `json:"id"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	SKU            *string           `json:"sku,omitempty"`
	Barcode        *string           `json:"barcode,omitempty"`
	UnitName       string            `json:"unitName,omitempty"`
	SalePrice      decimal.Decimal   `json:"salePrice"`
	WholesalePrice decimal.Decimal   `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal   `json:"purchasePrice"`
	TrackSerial    bool              `json:"trackSerial"`
	IsActive       bool              `json:"isActive"`
	Description    *string           `json:"description,omitempty"`
	ImageURL       *string           `json:"imageUrl,omitempty"`
	ParentID       *string           `json:"parentId,omitempty"`
	IsFolder       bool              `json:"isFolder"`
	DeletionMark   bool              `json:"deletionMark"`
	Version        int               `json:"version"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID.String(),
		Code:           p.Code,
		Name:           p.Name,
		SKU:            p.SKU,
		Barcode:        p.Barcode,
		UnitName:       p.UnitName,
		SalePrice:      p.SalePrice,
		WholesalePrice: p.WholesalePrice,
		PurchasePrice:  p.PurchasePrice,
		TrackSerial:    p.TrackSerial,
		IsActive:       p.IsActive,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		ParentID:       p.ParentID,
		IsFolder:       p.IsFolder,
		DeletionMark:   p.DeletionMark,
		Version:        p.Version,
		Attributes:     p.Attributes,
	}
}
