package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retailops/internal/core/apperror"
	"retailops/internal/core/id"
	"retailops/internal/domain/drafts/purchase"
	"retailops/internal/domain/documents/purchaseorder"
	"retailops/internal/infrastructure/http/v1/dto"
)

// PurchaseDraftHandler handles HTTP requests for per-store purchase drafts.
// Every mutation returns the updated draft snapshot so the terminal can
// re-render without a second round trip.
type PurchaseDraftHandler struct {
	*BaseHandler
	ledger *purchase.Ledger
	orders *purchaseorder.Service
}

// NewPurchaseDraftHandler creates a new purchase draft handler.
func NewPurchaseDraftHandler(base *BaseHandler, ledger *purchase.Ledger, orders *purchaseorder.Service) *PurchaseDraftHandler {
	return &PurchaseDraftHandler{
		BaseHandler: base,
		ledger:      ledger,
		orders:      orders,
	}
}

func (h *PurchaseDraftHandler) storeID(c *gin.Context) (id.ID, bool) {
	storeID, err := id.Parse(c.Param("storeId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid store id format"))
		return id.Nil(), false
	}
	return storeID, true
}

func (h *PurchaseDraftHandler) draft(c *gin.Context, storeID id.ID) {
	c.JSON(http.StatusOK, h.ledger.Get(storeID))
}

// Get handles GET /drafts/purchase/:storeId
func (h *PurchaseDraftHandler) Get(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}
	h.draft(c, storeID)
}

// SetItems handles PUT /drafts/purchase/:storeId/items
func (h *PurchaseDraftHandler) SetItems(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetDraftItemsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.SetItems(storeID, req.ToItems())
	h.draft(c, storeID)
}

// AddItem handles POST /drafts/purchase/:storeId/items
func (h *PurchaseDraftHandler) AddItem(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.DraftItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.AddItem(storeID, req.ToItem())
	h.draft(c, storeID)
}

// UpdateItem handles PATCH /drafts/purchase/:storeId/items/:itemId
func (h *PurchaseDraftHandler) UpdateItem(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdateDraftItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.UpdateItem(storeID, req.ToPatch(c.Param("itemId")))
	h.draft(c, storeID)
}

// RemoveItem handles DELETE /drafts/purchase/:storeId/items/:itemId
func (h *PurchaseDraftHandler) RemoveItem(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	h.ledger.RemoveItem(storeID, c.Param("itemId"))
	h.draft(c, storeID)
}

// UpdateItemQuantity handles PUT /drafts/purchase/:storeId/items/:itemId/quantity
func (h *PurchaseDraftHandler) UpdateItemQuantity(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.UpdateItemQuantity(storeID, c.Param("itemId"), *req.Quantity)
	h.draft(c, storeID)
}

// UpdateItemPrice handles PUT /drafts/purchase/:storeId/items/:itemId/price
func (h *PurchaseDraftHandler) UpdateItemPrice(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemPriceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.UpdateItemPurchasePrice(storeID, c.Param("itemId"), *req.PurchasePrice)
	h.draft(c, storeID)
}

// UpdateItemReceived handles PUT /drafts/purchase/:storeId/items/:itemId/received
func (h *PurchaseDraftHandler) UpdateItemReceived(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemReceivedRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.UpdateItemReceivedQuantity(storeID, c.Param("itemId"), *req.QuantityReceived)
	h.draft(c, storeID)
}

// SetSupplier handles PUT /drafts/purchase/:storeId/supplier
func (h *PurchaseDraftHandler) SetSupplier(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetSupplier(req.SupplierID) })
	h.draft(c, storeID)
}

// SetSupplierDetails handles PUT /drafts/purchase/:storeId/supplier-details
func (h *PurchaseDraftHandler) SetSupplierDetails(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetSupplierDetailsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetSupplierDetails(req.SupplierName) })
	h.draft(c, storeID)
}

// SetPurchaseType handles PUT /drafts/purchase/:storeId/purchase-type
func (h *PurchaseDraftHandler) SetPurchaseType(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetPurchaseTypeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t := purchase.PurchaseType(req.PurchaseType)
	switch t {
	case purchase.PurchaseTypeSupplier, purchase.PurchaseTypeWalkIn, purchase.PurchaseTypeOwnPurchase:
	default:
		h.Error(c, apperror.NewValidation("unknown purchase type").WithDetail("value", req.PurchaseType))
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetPurchaseType(t) })
	h.draft(c, storeID)
}

// SetDraftReference handles PUT /drafts/purchase/:storeId/draft-reference
func (h *PurchaseDraftHandler) SetDraftReference(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetDraftReferenceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetDraftReference(req.DraftReference) })
	h.draft(c, storeID)
}

// SetInvoiceNumber handles PUT /drafts/purchase/:storeId/invoice-number
func (h *PurchaseDraftHandler) SetInvoiceNumber(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetInvoiceNumberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetInvoiceNumber(req.InvoiceNumber) })
	h.draft(c, storeID)
}

// SetNotes handles PUT /drafts/purchase/:storeId/notes
func (h *PurchaseDraftHandler) SetNotes(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetNotesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetNotes(req.Notes) })
	h.draft(c, storeID)
}

// SetStatus handles PUT /drafts/purchase/:storeId/status
func (h *PurchaseDraftHandler) SetStatus(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetStatus(req.Status) })
	h.draft(c, storeID)
}

// SetPaymentStatus handles PUT /drafts/purchase/:storeId/payment-status
func (h *PurchaseDraftHandler) SetPaymentStatus(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetPaymentStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status := purchase.PaymentStatus(req.PaymentStatus)
	switch status {
	case purchase.PaymentPending, purchase.PaymentPartial, purchase.PaymentPaid:
	default:
		h.Error(c, apperror.NewValidation("unknown payment status").WithDetail("value", req.PaymentStatus))
		return
	}

	h.ledger.Apply(storeID, func(d *purchase.Draft) { d.SetPaymentStatus(status) })
	h.draft(c, storeID)
}

// UpdatePayment handles POST /drafts/purchase/:storeId/payments
func (h *PurchaseDraftHandler) UpdatePayment(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if req.Amount.IsNegative() {
		h.Error(c, apperror.NewValidation("payment amount cannot be negative").WithDetail("field", "amount"))
		return
	}

	h.ledger.UpdatePayment(storeID, req.Amount)
	h.draft(c, storeID)
}

// Reset handles DELETE /drafts/purchase/:storeId
func (h *PurchaseDraftHandler) Reset(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	h.ledger.Reset(storeID)
	h.NoContent(c)
}

// ResetAll handles DELETE /drafts/purchase
// Every store's draft is replaced with a fresh empty one.
func (h *PurchaseDraftHandler) ResetAll(c *gin.Context) {
	h.ledger.ResetAll()
	h.NoContent(c)
}

// Load handles POST /drafts/purchase/:storeId/load/:orderId
// Pulls a persisted order back into the store's draft for correction.
// Whatever was staged for the store before is discarded.
func (h *PurchaseDraftHandler) Load(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	orderID, err := id.Parse(c.Param("orderId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid order id format"))
		return
	}

	doc, err := h.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.ledger.Load(storeID, doc.ToDraft())
	h.draft(c, storeID)
}

// Submit handles POST /drafts/purchase/:storeId/submit
// A successful submit persists the purchase order and resets the draft.
func (h *PurchaseDraftHandler) Submit(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	doc, err := h.orders.SubmitDraft(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPurchaseOrder(doc))
}

// RegisterRoutes registers purchase draft routes.
func (h *PurchaseDraftHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.DELETE("", h.ResetAll)
	rg.GET("/:storeId", h.Get)
	rg.DELETE("/:storeId", h.Reset)
	rg.POST("/:storeId/load/:orderId", h.Load)
	rg.POST("/:storeId/submit", h.Submit)

	rg.PUT("/:storeId/items", h.SetItems)
	rg.POST("/:storeId/items", h.AddItem)
	rg.PATCH("/:storeId/items/:itemId", h.UpdateItem)
	rg.DELETE("/:storeId/items/:itemId", h.RemoveItem)
	rg.PUT("/:storeId/items/:itemId/quantity", h.UpdateItemQuantity)
	rg.PUT("/:storeId/items/:itemId/price", h.UpdateItemPrice)
	rg.PUT("/:storeId/items/:itemId/received", h.UpdateItemReceived)

	rg.PUT("/:storeId/supplier", h.SetSupplier)
	rg.PUT("/:storeId/supplier-details", h.SetSupplierDetails)
	rg.PUT("/:storeId/purchase-type", h.SetPurchaseType)
	rg.PUT("/:storeId/draft-reference", h.SetDraftReference)
	rg.PUT("/:storeId/invoice-number", h.SetInvoiceNumber)
	rg.PUT("/:storeId/notes", h.SetNotes)
	rg.PUT("/:storeId/status", h.SetStatus)
	rg.PUT("/:storeId/payment-status", h.SetPaymentStatus)
	rg.POST("/:storeId/payments", h.UpdatePayment)
}
