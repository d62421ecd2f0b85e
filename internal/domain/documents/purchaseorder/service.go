// Package purchaseorder provides the PurchaseOrder document service.
package purchaseorder

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"retailops/internal/core/id"
	"retailops/internal/core/numerator"
	"retailops/internal/core/tx"
	"retailops/internal/domain"
	"retailops/internal/domain/drafts/purchase"
	"retailops/pkg/logger"
)

// Service provides business operations for purchase order documents.
type Service struct {
	repo      Repository
	drafts    *purchase.Ledger
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*PurchaseOrder]
}

// NewService creates a new purchase order service.
func NewService(repo Repository, drafts *purchase.Ledger, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		drafts:    drafts,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*PurchaseOrder](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*PurchaseOrder] {
	return s.hooks
}

// SubmitDraft turns a store's draft into a persisted purchase order and
// resets the draft on success.
func (s *Service) SubmitDraft(ctx context.Context, storeID id.ID) (*PurchaseOrder, error) {
	doc, err := FromDraft(storeID, s.drafts.Get(storeID))
	if err != nil {
		return nil, err
	}

	if err := s.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.drafts.Reset(storeID)

	logger.Info(ctx, "purchase draft submitted",
		"store_id", storeID,
		"number", doc.Number,
		"lines", len(doc.Lines))

	return doc, nil
}

// Create creates a new purchase order document.
func (s *Service) Create(ctx context.Context, doc *PurchaseOrder) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig(NumeratorPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterCreate, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "purchase order created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves a purchase order with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates a purchase order document.
func (s *Service) Update(ctx context.Context, doc *PurchaseOrder) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
}

// ReceiveLine records receiving progress for one line under a row lock.
func (s *Service) ReceiveLine(ctx context.Context, docID, lineID id.ID, received float64) (*PurchaseOrder, error) {
	var doc *PurchaseOrder
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		lines, err := s.repo.GetLines(ctx, docID)
		if err != nil {
			return fmt.Errorf("get lines: %w", err)
		}
		doc.Lines = lines

		if err := doc.ReceiveLine(lineID, received); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		return s.repo.SaveLines(ctx, docID, doc.Lines)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase order line received",
		"id", docID, "line_id", lineID, "quantity", received, "status", doc.Status)
	return doc, nil
}

// RecordPayment accumulates a payment on the order under a row lock.
func (s *Service) RecordPayment(ctx context.Context, docID id.ID, amount decimal.Decimal) (*PurchaseOrder, error) {
	var doc *PurchaseOrder
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if err := doc.RecordPayment(amount); err != nil {
			return err
		}

		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase order payment recorded",
		"id", docID, "amount", amount, "payment_status", doc.PaymentStatus)
	return doc, nil
}

// Delete soft-deletes a purchase order.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	if _, err := s.repo.GetByID(ctx, docID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, docID)
}

// List retrieves purchase orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseOrder], error) {
	return s.repo.List(ctx, filter)
}
