// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"retailops/internal/core/numerator"
	"retailops/internal/domain"
	"retailops/internal/domain/catalogs/product"
	"retailops/internal/domain/catalogs/store"
	"retailops/internal/domain/catalogs/supplier"
	"retailops/internal/domain/documents/purchaseorder"
	"retailops/internal/domain/documents/salesreturn"
	"retailops/internal/domain/drafts/orderreturn"
	"retailops/internal/domain/drafts/purchase"
	"retailops/internal/domain/reports"
	"retailops/internal/infrastructure/cache"
	"retailops/internal/infrastructure/http/v1/handlers"
	"retailops/internal/infrastructure/http/v1/middleware"
	"retailops/internal/infrastructure/storage/postgres"
	"retailops/internal/infrastructure/storage/postgres/catalog_repo"
	"retailops/internal/infrastructure/storage/postgres/document_repo"
	"retailops/internal/infrastructure/storage/postgres/report_repo"
	"retailops/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs business transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Numerator for document number generation
	Numerator numerator.Generator

	// Audit records who changed what
	Audit *postgres.AuditService

	// ProductCache backs barcode lookups; nil disables caching
	ProductCache *cache.RedisProductCache

	// PurchaseDrafts holds per-store purchase drafts
	PurchaseDrafts *purchase.Ledger

	// ReturnSessions holds per-store return/exchange sessions
	ReturnSessions *orderreturn.Ledger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Operator())

	// Health endpoints live outside the API group
	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.ProductCache)
	healthHandler.RegisterRoutes(router.Group("/health"))

	baseHandler := handlers.NewBaseHandler()

	// Catalog services are shared between the catalog CRUD surface and the
	// POS lookup path, so they are built once here.
	productService := newProductService(cfg)
	supplierService := supplier.NewService(catalog_repo.NewSupplierRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)
	storeService := store.NewService(catalog_repo.NewStoreRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)

	// API v1
	v1 := router.Group("/api/v1")
	{
		catalogs := v1.Group("/catalog")
		{
			productHandler := handlers.NewProductHandler(baseHandler, productService)
			productHandler.RegisterRoutes(catalogs.Group("/products"))

			supplierHandler := handlers.NewSupplierHandler(baseHandler, supplierService)
			supplierHandler.RegisterRoutes(catalogs.Group("/suppliers"))

			storeHandler := handlers.NewStoreHandler(baseHandler, storeService)
			storeHandler.RegisterRoutes(catalogs.Group("/stores"))
		}

		posHandler := handlers.NewPOSHandler(baseHandler, productService)
		posHandler.RegisterRoutes(v1.Group("/pos"))

		orderService := newPurchaseOrderService(cfg)
		returnService := newSalesReturnService(cfg)

		drafts := v1.Group("/drafts")
		{
			purchaseDraftHandler := handlers.NewPurchaseDraftHandler(baseHandler, cfg.PurchaseDrafts, orderService)
			purchaseDraftHandler.RegisterRoutes(drafts.Group("/purchase"))

			returnDraftHandler := handlers.NewReturnDraftHandler(baseHandler, cfg.ReturnSessions, returnService)
			returnDraftHandler.RegisterRoutes(drafts.Group("/return"))
		}

		documents := v1.Group("/documents")
		{
			orderHandler := handlers.NewPurchaseOrderHandler(baseHandler, orderService)
			orderHandler.RegisterRoutes(documents.Group("/purchase-orders"))

			returnHandler := handlers.NewSalesReturnHandler(baseHandler, returnService)
			returnHandler.RegisterRoutes(documents.Group("/sales-returns"))
		}

		reportService := reports.NewService(report_repo.NewReportRepo(cfg.TxManager))
		reportHandler := handlers.NewReportsHandler(baseHandler, reportService)
		reportHandler.RegisterRoutes(v1.Group("/reports"))
	}

	return router
}

func newProductService(cfg RouterConfig) *product.Service {
	// A typed nil pointer must not reach the interface field, the service
	// checks the interface against nil to decide whether caching is on.
	var productCache product.Cache
	if cfg.ProductCache != nil {
		productCache = cfg.ProductCache
	}
	return product.NewService(catalog_repo.NewProductRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator, productCache)
}

func newPurchaseOrderService(cfg RouterConfig) *purchaseorder.Service {
	repo := document_repo.NewPurchaseOrderRepo(cfg.TxManager)
	service := purchaseorder.NewService(repo, cfg.PurchaseDrafts, cfg.Numerator, cfg.TxManager)

	if cfg.Audit != nil {
		service.Hooks().On(domain.AfterCreate, func(ctx context.Context, doc *purchaseorder.PurchaseOrder) error {
			return cfg.Audit.LogChange(ctx, "purchase_order", doc.ID, postgres.AuditActionCreate, map[string]any{
				"number":      doc.Number,
				"store_id":    doc.StoreID,
				"grand_total": doc.GrandTotal,
				"lines":       len(doc.Lines),
			})
		})
	}

	return service
}

func newSalesReturnService(cfg RouterConfig) *salesreturn.Service {
	repo := document_repo.NewSalesReturnRepo(cfg.TxManager)
	service := salesreturn.NewService(repo, cfg.ReturnSessions, cfg.Numerator, cfg.TxManager)

	if cfg.Audit != nil {
		service.Hooks().On(domain.AfterCreate, func(ctx context.Context, doc *salesreturn.SalesReturn) error {
			return cfg.Audit.LogChange(ctx, "sales_return", doc.ID, postgres.AuditActionCreate, map[string]any{
				"number":       doc.Number,
				"store_id":     doc.StoreID,
				"order_id":     doc.OrderID,
				"refund_total": doc.RefundTotal,
			})
		})
	}

	return service
}
