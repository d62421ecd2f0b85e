// Package store provides the Store catalog.
// A store is a physical retail location; drafts, documents and stock
// balances are all scoped to one store.
package store

import (
	"context"

	"retailops/internal/core/apperror"
	"retailops/internal/core/entity"
)

// Store represents a retail location.
type Store struct {
	entity.Catalog

	// Address is the physical address
	Address *string `db:"address" json:"address,omitempty"`

	// Phone number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// IsActive indicates if the store is operational
	IsActive bool `db:"is_active" json:"isActive"`

	// IsDefault indicates the default store for new terminals
	IsDefault bool `db:"is_default" json:"isDefault"`

	// AllowNegativeStock indicates if sales may drive stock below zero
	AllowNegativeStock bool `db:"allow_negative_stock" json:"allowNegativeStock"`
}

// NewStore creates a new Store with required fields.
func NewStore(code, name string) *Store {
	return &Store{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (s *Store) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.IsFolder && s.IsDefault {
		return apperror.NewValidation("a folder cannot be the default store").
			WithDetail("field", "isDefault")
	}

	return nil
}

// CanTrade returns true if documents may be created for this store.
func (s *Store) CanTrade() bool {
	return s.IsActive && !s.IsFolder && !s.DeletionMark
}
