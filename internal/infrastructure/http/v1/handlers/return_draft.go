package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retailops/internal/core/apperror"
	"retailops/internal/core/id"
	"retailops/internal/domain/documents/salesreturn"
	"retailops/internal/domain/drafts/orderreturn"
	"retailops/internal/infrastructure/http/v1/dto"
)

// ReturnDraftHandler handles HTTP requests for per-store return/exchange
// sessions. Every mutation returns the updated session snapshot.
type ReturnDraftHandler struct {
	*BaseHandler
	ledger  *orderreturn.Ledger
	returns *salesreturn.Service
}

// NewReturnDraftHandler creates a new return draft handler.
func NewReturnDraftHandler(base *BaseHandler, ledger *orderreturn.Ledger, returns *salesreturn.Service) *ReturnDraftHandler {
	return &ReturnDraftHandler{
		BaseHandler: base,
		ledger:      ledger,
		returns:     returns,
	}
}

func (h *ReturnDraftHandler) storeID(c *gin.Context) (id.ID, bool) {
	storeID, err := id.Parse(c.Param("storeId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid store id format"))
		return id.Nil(), false
	}
	return storeID, true
}

func (h *ReturnDraftHandler) session(c *gin.Context, storeID id.ID) {
	c.JSON(http.StatusOK, h.ledger.Get(storeID))
}

// Get handles GET /drafts/return/:storeId
func (h *ReturnDraftHandler) Get(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}
	h.session(c, storeID)
}

// SetOrder handles PUT /drafts/return/:storeId/order
// Starts a fresh session against the given order, by id only.
func (h *ReturnDraftHandler) SetOrder(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetReturnOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.SetOrderID(storeID, req.OrderID)
	h.session(c, storeID)
}

// InitSession handles POST /drafts/return/:storeId/session
// Snapshots the original order and derives the returnable lines.
func (h *ReturnDraftHandler) InitSession(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.InitReturnSessionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.InitSession(storeID, req.OrderID, req.ToSnapshot())
	h.session(c, storeID)
}

// UpdateReturnQuantity handles PUT /drafts/return/:storeId/items/:itemId/quantity
func (h *ReturnDraftHandler) UpdateReturnQuantity(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdateReturnQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.UpdateReturnQuantity(storeID, c.Param("itemId"), *req.Quantity)
	h.session(c, storeID)
}

// SetReason handles PUT /drafts/return/:storeId/reason
func (h *ReturnDraftHandler) SetReason(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.SetReturnReasonRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.SetReason(storeID, req.ReasonID, req.Notes)
	h.session(c, storeID)
}

// AddExchangeItem handles POST /drafts/return/:storeId/exchange-items
func (h *ReturnDraftHandler) AddExchangeItem(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.AddExchangeItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.AddExchangeItem(storeID, req.ToItem())
	h.session(c, storeID)
}

// UpdateExchangeItem handles PATCH /drafts/return/:storeId/exchange-items/:itemId
func (h *ReturnDraftHandler) UpdateExchangeItem(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	var req dto.UpdateExchangeItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.ledger.UpdateExchangeItem(storeID, req.ToPatch(c.Param("itemId")))
	h.session(c, storeID)
}

// RemoveExchangeItem handles DELETE /drafts/return/:storeId/exchange-items/:itemId
func (h *ReturnDraftHandler) RemoveExchangeItem(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	h.ledger.RemoveExchangeItem(storeID, c.Param("itemId"))
	h.session(c, storeID)
}

// Clear handles DELETE /drafts/return/:storeId
func (h *ReturnDraftHandler) Clear(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	h.ledger.Clear(storeID)
	h.NoContent(c)
}

// Submit handles POST /drafts/return/:storeId/submit
// A successful submit persists the sales return and clears the session.
func (h *ReturnDraftHandler) Submit(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	doc, err := h.returns.SubmitSession(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSalesReturn(doc))
}

// RegisterRoutes registers return draft routes.
func (h *ReturnDraftHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:storeId", h.Get)
	rg.DELETE("/:storeId", h.Clear)
	rg.POST("/:storeId/submit", h.Submit)

	rg.PUT("/:storeId/order", h.SetOrder)
	rg.POST("/:storeId/session", h.InitSession)
	rg.PUT("/:storeId/reason", h.SetReason)
	rg.PUT("/:storeId/items/:itemId/quantity", h.UpdateReturnQuantity)

	rg.POST("/:storeId/exchange-items", h.AddExchangeItem)
	rg.PATCH("/:storeId/exchange-items/:itemId", h.UpdateExchangeItem)
	rg.DELETE("/:storeId/exchange-items/:itemId", h.RemoveExchangeItem)
}
