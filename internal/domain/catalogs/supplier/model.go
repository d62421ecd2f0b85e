// Package supplier provides the Supplier catalog.
// Suppliers are the counterparties purchase orders are placed against.
package supplier

import (
	"context"
	"regexp"

	"retailops/internal/core/apperror"
	"retailops/internal/core/entity"
)

// Supplier represents a goods supplier.
type Supplier struct {
	entity.Catalog

	// ContactName is the primary contact person
	ContactName *string `db:"contact_name" json:"contactName,omitempty"`

	// Phone number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email address
	Email *string `db:"email" json:"email,omitempty"`

	// Address is the postal address
	Address *string `db:"address" json:"address,omitempty"`

	// TaxID is the supplier's tax registration number
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// PaymentTermsDays is the agreed payment term in days (0 = prepaid)
	PaymentTermsDays int `db:"payment_terms_days" json:"paymentTermsDays"`

	// IsActive indicates if new purchase orders may reference this supplier
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(code, name string) *Supplier {
	return &Supplier{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.Email != nil && *s.Email != "" && !emailRe.MatchString(*s.Email) {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email").
			WithDetail("value", *s.Email)
	}

	if s.PaymentTermsDays < 0 {
		return apperror.NewValidation("payment terms cannot be negative").
			WithDetail("field", "paymentTermsDays")
	}

	return nil
}

// CanOrder returns true if new purchase orders may be placed with this supplier.
func (s *Supplier) CanOrder() bool {
	return s.IsActive && !s.IsFolder && !s.DeletionMark
}
