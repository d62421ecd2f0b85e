// Package orderreturn maintains in-progress return and exchange sessions,
// one per store. A session covers the subset of a historical order being
// returned plus any replacement items selected in exchange.
package orderreturn

import (
	"time"

	"retailops/internal/core/id"
	"retailops/internal/core/types"
)

// OrderLine is one line of the original order being returned against.
type OrderLine struct {
	OrderItemID string      `json:"orderItemId"`
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName,omitempty"`
	Quantity    float64     `json:"quantity"`
	Rate        types.Money `json:"rate"`
}

// OrderSnapshot is an immutable copy of the original order taken when a
// return session starts.
type OrderSnapshot struct {
	OrderID string      `json:"orderId"`
	Number  string      `json:"number,omitempty"`
	Date    time.Time   `json:"date,omitempty"`
	Lines   []OrderLine `json:"lines"`
}

// ReturnItem is one returnable line derived from the original order.
// OriginalQuantity never changes; ReturnQuantity is clamped to it.
type ReturnItem struct {
	ID               string      `json:"id"`
	OrderItemID      string      `json:"orderItemId"`
	ProductID        string      `json:"productId"`
	ProductName      string      `json:"productName,omitempty"`
	OriginalQuantity float64     `json:"originalQuantity"`
	ReturnQuantity   float64     `json:"returnQuantity"`
	Rate             types.Money `json:"rate"`
	Amount           types.Money `json:"amount"`
}

// ExchangeItem is a replacement product selected during the session.
// Items carrying serial numbers identify physically distinct units and are
// never merged with each other.
type ExchangeItem struct {
	ID            string      `json:"id"`
	ProductID     string      `json:"productId"`
	StockID       string      `json:"stockId,omitempty"`
	ProductName   string      `json:"productName,omitempty"`
	Quantity      float64     `json:"quantity"`
	Rate          types.Money `json:"rate"`
	Amount        types.Money `json:"amount"`
	IsWholesale   bool        `json:"isWholesale,omitempty"`
	SerialNumbers []string    `json:"serialNumbers,omitempty"`
	WarrantyID    string      `json:"warrantyId,omitempty"`

	// AvailableQuantity is the stock on hand at selection time. When set
	// (> 0) it caps the merged quantity of non-serialized duplicates.
	AvailableQuantity float64 `json:"availableQuantity,omitempty"`
}

func (e *ExchangeItem) serialized() bool {
	return len(e.SerialNumbers) > 0
}

func (e *ExchangeItem) recalc() {
	e.Amount = types.LineAmount(e.Quantity, e.Rate)
}

// ExchangeItemPatch carries a partial update for an exchange line.
// Nil fields are left unchanged.
type ExchangeItemPatch struct {
	ID            string
	Quantity      *float64
	Rate          *types.Money
	IsWholesale   *bool
	SerialNumbers []string
	WarrantyID    *string
}

// Draft is one store's in-progress return/exchange session.
// ReturnTotal and ExchangeTotal are derived and kept consistent with the
// respective item lists.
type Draft struct {
	OrderID string         `json:"orderId,omitempty"`
	Order   *OrderSnapshot `json:"order,omitempty"`

	ReturnItems   []ReturnItem   `json:"returnItems"`
	ExchangeItems []ExchangeItem `json:"exchangeItems"`

	// One reason/notes pair covers the whole transaction, not individual lines.
	ReturnReasonID string `json:"returnReasonId,omitempty"`
	ReturnNotes    string `json:"returnNotes,omitempty"`

	ReturnTotal   types.Money `json:"returnTotal"`
	ExchangeTotal types.Money `json:"exchangeTotal"`
}

// NewDraft returns an empty session.
func NewDraft() *Draft {
	return &Draft{
		ReturnItems:   []ReturnItem{},
		ExchangeItems: []ExchangeItem{},
		ReturnTotal:   types.Zero(),
		ExchangeTotal: types.Zero(),
	}
}

func (d *Draft) recalcReturnTotal() {
	total := types.Zero()
	for i := range d.ReturnItems {
		total = total.Add(d.ReturnItems[i].Amount)
	}
	d.ReturnTotal = total
}

func (d *Draft) recalcExchangeTotal() {
	total := types.Zero()
	for i := range d.ExchangeItems {
		total = total.Add(d.ExchangeItems[i].Amount)
	}
	d.ExchangeTotal = total
}

// SetOrderID begins a new session against the given order, discarding any
// prior session data so stale lines from another order cannot leak in.
func (d *Draft) SetOrderID(orderID string) {
	*d = *NewDraft()
	d.OrderID = orderID
}

// InitSession snapshots the original order and derives the returnable lines,
// each starting with nothing selected for return.
func (d *Draft) InitSession(orderID string, order OrderSnapshot) {
	*d = *NewDraft()
	d.OrderID = orderID

	snapshot := order
	snapshot.OrderID = orderID
	snapshot.Lines = make([]OrderLine, len(order.Lines))
	copy(snapshot.Lines, order.Lines)
	d.Order = &snapshot

	d.ReturnItems = make([]ReturnItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		d.ReturnItems = append(d.ReturnItems, ReturnItem{
			ID:               id.New().String(),
			OrderItemID:      line.OrderItemID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			OriginalQuantity: line.Quantity,
			ReturnQuantity:   0,
			Rate:             line.Rate,
			Amount:           types.Zero(),
		})
	}
}

// UpdateReturnQuantity sets how much of a line is being returned. The value
// is clamped into [0, OriginalQuantity] and the line amount follows it.
func (d *Draft) UpdateReturnQuantity(itemID string, quantity float64) {
	for i := range d.ReturnItems {
		it := &d.ReturnItems[i]
		if it.ID != itemID {
			continue
		}
		q := max(0, min(quantity, it.OriginalQuantity))
		it.ReturnQuantity = q
		it.Amount = types.LineAmount(q, it.Rate)
		d.recalcReturnTotal()
		return
	}
}

// SetReason records the reason/notes pair for the whole transaction.
func (d *Draft) SetReason(reasonID, notes string) {
	d.ReturnReasonID = reasonID
	d.ReturnNotes = notes
}

// AddExchangeItem adds a replacement product. Serialized items always get
// their own row. Non-serialized duplicates of the same product and stock
// are merged, with the summed quantity capped at the available stock.
func (d *Draft) AddExchangeItem(item ExchangeItem) {
	if item.ProductID == "" {
		return
	}

	if !item.serialized() {
		for i := range d.ExchangeItems {
			ex := &d.ExchangeItems[i]
			if ex.serialized() || ex.ProductID != item.ProductID || ex.StockID != item.StockID {
				continue
			}
			ex.Quantity += item.Quantity
			if ex.AvailableQuantity > 0 && ex.Quantity > ex.AvailableQuantity {
				ex.Quantity = ex.AvailableQuantity
			}
			ex.recalc()
			d.recalcExchangeTotal()
			return
		}
	}

	if item.ID == "" {
		item.ID = id.New().String()
	}
	if item.AvailableQuantity > 0 && item.Quantity > item.AvailableQuantity {
		item.Quantity = item.AvailableQuantity
	}
	item.recalc()
	d.ExchangeItems = append(d.ExchangeItems, item)
	d.recalcExchangeTotal()
}

// UpdateExchangeItem applies a merge-patch to the exchange line with the
// matching id. Unknown ids are ignored.
func (d *Draft) UpdateExchangeItem(patch ExchangeItemPatch) {
	for i := range d.ExchangeItems {
		ex := &d.ExchangeItems[i]
		if ex.ID != patch.ID {
			continue
		}
		if patch.Quantity != nil && *patch.Quantity >= 0 {
			q := *patch.Quantity
			if ex.AvailableQuantity > 0 && q > ex.AvailableQuantity {
				q = ex.AvailableQuantity
			}
			ex.Quantity = q
		}
		if patch.Rate != nil && !patch.Rate.IsNegative() {
			ex.Rate = *patch.Rate
		}
		if patch.IsWholesale != nil {
			ex.IsWholesale = *patch.IsWholesale
		}
		if patch.SerialNumbers != nil {
			ex.SerialNumbers = append([]string(nil), patch.SerialNumbers...)
		}
		if patch.WarrantyID != nil {
			ex.WarrantyID = *patch.WarrantyID
		}
		ex.recalc()
		d.recalcExchangeTotal()
		return
	}
}

// RemoveExchangeItem deletes the exchange line with the given id.
func (d *Draft) RemoveExchangeItem(itemID string) {
	for i := range d.ExchangeItems {
		if d.ExchangeItems[i].ID != itemID {
			continue
		}
		d.ExchangeItems = append(d.ExchangeItems[:i], d.ExchangeItems[i+1:]...)
		d.recalcExchangeTotal()
		return
	}
}

// Clear resets the session to empty.
func (d *Draft) Clear() {
	*d = *NewDraft()
}

// Clone returns a deep copy of the session.
func (d *Draft) Clone() *Draft {
	cp := *d
	if d.Order != nil {
		snapshot := *d.Order
		snapshot.Lines = make([]OrderLine, len(d.Order.Lines))
		copy(snapshot.Lines, d.Order.Lines)
		cp.Order = &snapshot
	}
	cp.ReturnItems = make([]ReturnItem, len(d.ReturnItems))
	copy(cp.ReturnItems, d.ReturnItems)
	cp.ExchangeItems = make([]ExchangeItem, len(d.ExchangeItems))
	for i, ex := range d.ExchangeItems {
		ex.SerialNumbers = append([]string(nil), ex.SerialNumbers...)
		cp.ExchangeItems[i] = ex
	}
	return &cp
}
