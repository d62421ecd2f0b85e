package store

import (
	"context"
	"fmt"
	"time"

	"retailops/internal/core/numerator"
	"retailops/internal/core/tx"
	"retailops/internal/domain"
)

// Service provides business logic for the Store catalog.
type Service struct {
	*domain.CatalogService[*Store]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Store service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Store]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "store",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForWrite)
	base.Hooks().On(domain.BeforeUpdate, svc.prepareForWrite)

	return svc
}

// prepareForWrite generates a code when missing and keeps a single default store.
func (s *Service) prepareForWrite(ctx context.Context, st *Store) error {
	if st.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("ST"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		st.Code = code
	}

	if st.IsDefault {
		if err := s.repo.ClearDefault(ctx); err != nil {
			return err
		}
	}

	return nil
}
