// Package salesreturn provides the SalesReturn document service.
package salesreturn

import (
	"context"
	"fmt"
	"time"

	"retailops/internal/core/id"
	"retailops/internal/core/numerator"
	"retailops/internal/core/tx"
	"retailops/internal/domain"
	"retailops/internal/domain/drafts/orderreturn"
	"retailops/pkg/logger"
)

// Service provides business operations for sales return documents.
type Service struct {
	repo      Repository
	sessions  *orderreturn.Ledger
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*SalesReturn]
}

// NewService creates a new sales return service.
func NewService(repo Repository, sessions *orderreturn.Ledger, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		sessions:  sessions,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*SalesReturn](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*SalesReturn] {
	return s.hooks
}

// SubmitSession turns a store's return/exchange session into a persisted
// sales return and clears the session on success.
func (s *Service) SubmitSession(ctx context.Context, storeID id.ID) (*SalesReturn, error) {
	doc, err := FromSession(storeID, s.sessions.Get(storeID))
	if err != nil {
		return nil, err
	}

	if err := s.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.sessions.Clear(storeID)

	logger.Info(ctx, "return session submitted",
		"store_id", storeID,
		"number", doc.Number,
		"returned_lines", len(doc.ReturnedLines),
		"exchange_lines", len(doc.ExchangeLines),
		"refund_total", doc.RefundTotal)

	return doc, nil
}

// Create creates a new sales return document.
func (s *Service) Create(ctx context.Context, doc *SalesReturn) error {
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
		if err := s.repo.SaveLines(ctx, doc.ID, doc.ReturnedLines, doc.ExchangeLines); err != nil {
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

	logger.Info(ctx, "sales return created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves a sales return with both line lists.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*SalesReturn, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.ReturnedLines, err = s.repo.GetReturnedLines(ctx, docID); err != nil {
		return nil, fmt.Errorf("get returned lines: %w", err)
	}
	if doc.ExchangeLines, err = s.repo.GetExchangeLines(ctx, docID); err != nil {
		return nil, fmt.Errorf("get exchange lines: %w", err)
	}

	return doc, nil
}

// Delete soft-deletes a sales return.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	if _, err := s.repo.GetByID(ctx, docID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, docID)
}

// List retrieves sales returns with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*SalesReturn], error) {
	return s.repo.List(ctx, filter)
}
