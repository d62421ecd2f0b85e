package product

import (
	"context"
	"fmt"
	"time"

	"retailops/internal/core/apperror"
	"retailops/internal/core/numerator"
	"retailops/internal/core/tx"
	"retailops/internal/domain"
	"retailops/pkg/logger"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	numerator numerator.Generator
	cache     Cache // optional, nil disables caching
}

// NewService creates a new Product service. Cache may be nil.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator, cache Cache) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
		cache:          cache,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	base.Hooks().On(domain.AfterUpdate, svc.invalidateCache)
	base.Hooks().On(domain.AfterDelete, svc.invalidateCache)

	return svc
}

// prepareForCreate generates a code when none is provided.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PRD"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}
	return nil
}

// invalidateCache drops the barcode cache entry after a write.
func (s *Service) invalidateCache(ctx context.Context, p *Product) error {
	if s.cache == nil || p.Barcode == nil || *p.Barcode == "" {
		return nil
	}
	if err := s.cache.Invalidate(ctx, *p.Barcode); err != nil {
		logger.Warn(ctx, "product cache invalidation failed", "barcode", *p.Barcode, "error", err)
	}
	return nil
}

// FindByBarcode resolves a product by barcode, read-through cached.
// This is the hot path for POS terminal scans.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*Product, error) {
	if barcode == "" {
		return nil, apperror.NewValidation("barcode is required").WithDetail("field", "barcode")
	}

	if s.cache != nil {
		if p, err := s.cache.GetByBarcode(ctx, barcode); err != nil {
			logger.Warn(ctx, "product cache read failed", "barcode", barcode, "error", err)
		} else if p != nil {
			return p, nil
		}
	}

	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", barcode)
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, p); err != nil {
			logger.Warn(ctx, "product cache write failed", "barcode", barcode, "error", err)
		}
	}
	return p, nil
}

// FindBySKU resolves a product by SKU.
func (s *Service) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	if sku == "" {
		return nil, apperror.NewValidation("sku is required").WithDetail("field", "sku")
	}
	p, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", sku)
		}
		return nil, err
	}
	return p, nil
}
