package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retailops/internal/core/apperror"
	"retailops/internal/domain/catalogs/product"
	"retailops/internal/infrastructure/http/v1/dto"
)

// POSHandler provides the hot-path lookups used by terminals during a sale.
type POSHandler struct {
	*BaseHandler
	products *product.Service
}

// NewPOSHandler creates a new POS handler.
func NewPOSHandler(base *BaseHandler, products *product.Service) *POSHandler {
	return &POSHandler{
		BaseHandler: base,
		products:    products,
	}
}

// LookupProduct handles GET /pos/products/lookup?barcode=...
// Scans resolve through the barcode cache before hitting the database.
func (h *POSHandler) LookupProduct(c *gin.Context) {
	barcode := c.Query("barcode")
	if barcode == "" {
		h.Error(c, apperror.NewValidation("barcode query parameter is required"))
		return
	}

	p, err := h.products.FindByBarcode(c.Request.Context(), barcode)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(p))
}

// RegisterRoutes registers POS routes.
func (h *POSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/lookup", h.LookupProduct)
}
