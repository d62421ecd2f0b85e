package dto

import (
	"retailops/internal/core/entity"
	"retailops/internal/domain/catalogs/store"
)

// --- Request DTOs ---

// CreateStoreRequest is the request body for creating a store.
type CreateStoreRequest struct {
	Code               string            `json:"code"`
	Name               string            `json:"name" binding:"required"`
	Address            *string           `json:"address"`
	Phone              *string           `json:"phone"`
	IsActive           *bool             `json:"isActive"`
	IsDefault          bool              `json:"isDefault"`
	AllowNegativeStock bool              `json:"allowNegativeStock"`
	ParentID           *string           `json:"parentId"`
	IsFolder           bool              `json:"isFolder"`
	Attributes         entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateStoreRequest) ToEntity() *store.Store {
	s := store.NewStore(r.Code, r.Name)
	s.Address = r.Address
	s.Phone = r.Phone
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	s.IsDefault = r.IsDefault
	s.AllowNegativeStock = r.AllowNegativeStock
	s.ParentID = r.ParentID
	s.IsFolder = r.IsFolder
	s.Attributes = r.Attributes
	return s
}

// UpdateStoreRequest is the request body for updating a store.
type UpdateStoreRequest struct {
	Code               string            `json:"code"`
	Name               string            `json:"name" binding:"required"`
	Address            *string           `json:"address,omitempty"`
	Phone              *string           `json:"phone,omitempty"`
	IsActive           bool              `json:"isActive"`
	IsDefault          bool              `json:"isDefault"`
	AllowNegativeStock bool              `json:"allowNegativeStock"`
	ParentID           *string           `json:"parentId,omitempty"`
	IsFolder           bool              `json:"isFolder"`
	Attributes         entity.Attributes `json:"attributes"`
	Version            int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateStoreRequest) ApplyTo(s *store.Store) {
	s.Code = r.Code
	s.Name = r.Name
	s.Address = r.Address
	s.Phone = r.Phone
	s.IsActive = r.IsActive
	s.IsDefault = r.IsDefault
	s.AllowNegativeStock = r.AllowNegativeStock
	s.ParentID = r.ParentID
	s.IsFolder = r.IsFolder
	s.Attributes = r.Attributes
	s.Version = r.Version
}

// --- Response DTOs ---

// StoreResponse is the response body for a store.
type StoreResponse struct {
	ID                 string            `json:"id"`
	Code               string            `json:"code"`
	Name               string            `json:"name"`
	Address            *string           `json:"address,omitempty"`
	Phone              *string           `json:"phone,omitempty"`
	IsActive           bool              `json:"isActive"`
	IsDefault          bool              `json:"isDefault"`
	AllowNegativeStock bool              `json:"allowNegativeStock"`
	ParentID           *string           `json:"parentId,omitempty"`
	IsFolder           bool              `json:"isFolder"`
	DeletionMark       bool              `json:"deletionMark"`
	Version            int               `json:"version"`
	Attributes         entity.Attributes `json:"attributes,omitempty"`
}

// FromStore creates response DTO from domain entity.
func FromStore(s *store.Store) *StoreResponse {
	return &StoreResponse{
		ID:                 s.ID.String(),
		Code:               s.Code,
		Name:               s.Name,
		Address:            s.Address,
		Phone:              s.Phone,
		IsActive:           s.IsActive,
		IsDefault:          s.IsDefault,
		AllowNegativeStock: s.AllowNegativeStock,
		ParentID:           s.ParentID,
		IsFolder:           s.IsFolder,
		DeletionMark:       s.DeletionMark,
		Version:            s.Version,
		Attributes:         s.Attributes,
	}
}
