package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"retailops/internal/core/apperror"
	"retailops/internal/core/id"
	"retailops/internal/domain/reports"
	"retailops/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

func parseIDs(values []string) []id.ID {
	var out []id.ID
	for _, v := range values {
		if parsed, err := id.Parse(v); err == nil {
			out = append(out, parsed)
		}
	}
	return out
}

// GetPurchaseJournal handles GET /reports/purchase-journal
func (h *ReportsHandler) GetPurchaseJournal(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PurchaseJournalRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.PurchaseJournalFilter{
		StoreIDs:    parseIDs(req.StoreIDs),
		SupplierIDs: parseIDs(req.SupplierIDs),
		Statuses:    req.Statuses,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}

	if req.FromDate != nil {
		t, err := time.Parse(time.RFC3339, *req.FromDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid fromDate format, expected RFC3339"))
			return
		}
		filter.FromDate = &t
	}
	if req.ToDate != nil {
		t, err := time.Parse(time.RFC3339, *req.ToDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid toDate format, expected RFC3339"))
			return
		}
		filter.ToDate = &t
	}

	journal, err := h.service.GetPurchaseJournal(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPurchaseJournal(journal))
}

// GetReturnsJournal handles GET /reports/returns-journal
func (h *ReportsHandler) GetReturnsJournal(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReturnsJournalRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.ReturnsJournalFilter{
		StoreIDs:  parseIDs(req.StoreIDs),
		ReasonIDs: req.ReasonIDs,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}

	if req.FromDate != nil {
		t, err := time.Parse(time.RFC3339, *req.FromDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid fromDate format, expected RFC3339"))
			return
		}
		filter.FromDate = &t
	}
	if req.ToDate != nil {
		t, err := time.Parse(time.RFC3339, *req.ToDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid toDate format, expected RFC3339"))
			return
		}
		filter.ToDate = &t
	}

	journal, err := h.service.GetReturnsJournal(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReturnsJournal(journal))
}

// GetStockBalance handles GET /reports/stock-balance
func (h *ReportsHandler) GetStockBalance(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockBalanceReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.StockBalanceFilter{
		AsOfDate:    req.AsOfDate,
		StoreIDs:    parseIDs(req.StoreIDs),
		ProductIDs:  parseIDs(req.ProductIDs),
		ExcludeZero: req.ExcludeZero == nil || *req.ExcludeZero,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}

	report, err := h.service.GetStockBalance(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStockBalanceReport(report))
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/purchase-journal", h.GetPurchaseJournal)
	rg.GET("/returns-journal", h.GetReturnsJournal)
	rg.GET("/stock-balance", h.GetStockBalance)
}
