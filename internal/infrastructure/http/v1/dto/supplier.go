package dto

import (
	"retailops/internal/core/entity"
	"retailops/internal/domain/catalogs/supplier"
)

// --- Request DTOs ---

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Code             string            `json:"code"`
	Name             string            `json:"name" binding:"required"`
	ContactName      *string           `json:"contactName"`
	Phone            *string           `json:"phone"`
	Email            *string           `json:"email"`
	Address          *string           `json:"address"`
	TaxID            *string           `json:"taxId"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	IsActive         *bool             `json:"isActive"`
	ParentID         *string           `json:"parentId"`
	IsFolder         bool              `json:"isFolder"`
	Attributes       entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.Code, r.Name)
	s.ContactName = r.ContactName
	s.Phone = r.Phone
	s.Email = r.Email
	s.Address = r.Address
	s.TaxID = r.TaxID
	s.PaymentTermsDays = r.PaymentTermsDays
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	s.ParentID = r.ParentID
	s.IsFolder = r.IsFolder
	s.Attributes = r.Attributes
	return s
}

// UpdateSupplierRequest is the request body for updating a supplier.
type UpdateSupplierRequest struct {
	Code             string            `json:"code"`
	Name             string            `json:"name" binding:"required"`
	ContactName      *string           `json:"contactName,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Email            *string           `json:"email,omitempty"`
	Address          *string           `json:"address,omitempty"`
	TaxID            *string           `json:"taxId,omitempty"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	IsActive         bool              `json:"isActive"`
	ParentID         *string           `json:"parentId,omitempty"`
	IsFolder         bool              `json:"isFolder"`
	Attributes       entity.Attributes `json:"attributes"`
	Version          int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) {
	s.Code = r.Code
	s.Name = r.Name
	s.ContactName = r.ContactName
	s.Phone = r.Phone
	s.Email = r.Email
	s.Address = r.Address
	s.TaxID = r.TaxID
	s.PaymentTermsDays = r.PaymentTermsDays
	s.IsActive = r.IsActive
	s.ParentID = r.ParentID
	s.IsFolder = r.IsFolder
	s.Attributes = r.Attributes
	s.Version = r.Version
}

// --- Response DTOs ---

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	ID               string            `json:"id"`
	Code             string            `json:"code"`
	Name             string            `json:"name"`
	ContactName      *string           `json:"contactName,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Email            *string           `json:"email,omitempty"`
	Address          *string           `json:"address,omitempty"`
	TaxID            *string           `json:"taxId,omitempty"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	IsActive         bool              `json:"isActive"`
	ParentID         *string           `json:"parentId,omitempty"`
	IsFolder         bool              `json:"isFolder"`
	DeletionMark     bool              `json:"deletionMark"`
	Version          int               `json:"version"`
	Attributes       entity.Attributes `json:"attributes,omitempty"`
}

// FromSupplier creates response DTO from domain entity.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:               s.ID.String(),
		Code:             s.Code,
		Name:             s.Name,
		ContactName:      s.ContactName,
		Phone:            s.Phone,
		Email:            s.Email,
		Address:          s.Address,
		TaxID:            s.TaxID,
		PaymentTermsDays: s.PaymentTermsDays,
		IsActive:         s.IsActive,
		ParentID:         s.ParentID,
		IsFolder:         s.IsFolder,
		DeletionMark:     s.DeletionMark,
		Version:          s.Version,
		Attributes:       s.Attributes,
	}
}
