package orderreturn

import (
	"sync"

	"retailops/internal/core/id"
)

// Ledger holds one return/exchange session per store. Sessions are
// materialized lazily on first mutation.
//
// A single mutex serializes all mutations, so sessions for the same store
// see operations in call order while different stores stay isolated.
// Reads return deep copies; the ledger owns the live aggregates.
type Ledger struct {
	mu       sync.Mutex
	sessions map[id.ID]*Draft
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		sessions: make(map[id.ID]*Draft),
	}
}

// session returns the live session for a store, creating it if absent.
// Caller must hold mu.
func (l *Ledger) session(storeID id.ID) *Draft {
	d, ok := l.sessions[storeID]
	if !ok {
		d = NewDraft()
		l.sessions[storeID] = d
	}
	return d
}

// Get returns a snapshot of the store's session. A store with no session
// yet yields an empty default.
func (l *Ledger) Get(storeID id.ID) *Draft {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, ok := l.sessions[storeID]
	if !ok {
		return NewDraft()
	}
	return d.Clone()
}

// SetOrderID begins a new session for the store against the given order.
func (l *Ledger) SetOrderID(storeID id.ID, orderID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).SetOrderID(orderID)
}

// InitSession snapshots the original order and derives returnable lines.
func (l *Ledger) InitSession(storeID id.ID, orderID string, order OrderSnapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).InitSession(orderID, order)
}

// UpdateReturnQuantity sets the returned quantity of one line.
func (l *Ledger) UpdateReturnQuantity(storeID id.ID, itemID string, quantity float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).UpdateReturnQuantity(itemID, quantity)
}

// SetReason records the transaction-level reason/notes pair.
func (l *Ledger) SetReason(storeID id.ID, reasonID, notes string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).SetReason(reasonID, notes)
}

// AddExchangeItem adds a replacement product to the store's session.
func (l *Ledger) AddExchangeItem(storeID id.ID, item ExchangeItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).AddExchangeItem(item)
}

// UpdateExchangeItem applies a merge-patch to one exchange line.
func (l *Ledger) UpdateExchangeItem(storeID id.ID, patch ExchangeItemPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).UpdateExchangeItem(patch)
}

// RemoveExchangeItem removes one exchange line.
func (l *Ledger) RemoveExchangeItem(storeID id.ID, itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session(storeID).RemoveExchangeItem(itemID)
}

// Clear resets the store's session to empty.
func (l *Ledger) Clear(storeID id.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sessions[storeID] = NewDraft()
}
