package purchase

import (
	"sync"

	"retailops/internal/core/id"
	"retailops/internal/core/types"
)

// Ledger holds one purchase draft per store. Drafts are materialized lazily
// on first mutation and live until reset or loaded over.
//
// A single mutex serializes all mutations, so callers observe every draft
// operation as atomic and applied in call order. Reads return deep copies;
// the ledger is the only owner of the live aggregates.
type Ledger struct {
	mu     sync.Mutex
	drafts map[id.ID]*Draft
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		drafts: make(map[id.ID]*Draft),
	}
}

// draft returns the live draft for a store, creating it if absent.
// Caller must hold mu.
func (l *Ledger) draft(storeID id.ID) *Draft {
	d, ok := l.drafts[storeID]
	if !ok {
		d = NewDraft()
		l.drafts[storeID] = d
	}
	return d
}

// Get returns a snapshot of the store's draft. A store with no draft yet
// yields an empty default.
func (l *Ledger) Get(storeID id.ID) *Draft {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, ok := l.drafts[storeID]
	if !ok {
		return NewDraft()
	}
	return d.Clone()
}

// SetItems replaces the store's full line list.
func (l *Ledger) SetItems(storeID id.ID, items []Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).SetItems(items)
}

// AddItem adds a line to the store's draft, merging duplicates.
func (l *Ledger) AddItem(storeID id.ID, item Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).AddItem(item)
}

// UpdateItem applies a merge-patch to one line of the store's draft.
func (l *Ledger) UpdateItem(storeID id.ID, patch ItemPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).UpdateItem(patch)
}

// RemoveItem removes one line from the store's draft.
func (l *Ledger) RemoveItem(storeID id.ID, itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).RemoveItem(itemID)
}

// UpdateItemQuantity sets one line's quantity.
func (l *Ledger) UpdateItemQuantity(storeID id.ID, itemID string, quantity float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).UpdateItemQuantity(itemID, quantity)
}

// UpdateItemPurchasePrice sets one line's unit price.
func (l *Ledger) UpdateItemPurchasePrice(storeID id.ID, itemID string, price types.Money) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).UpdateItemPurchasePrice(itemID, price)
}

// UpdateItemReceivedQuantity records receiving progress for one line.
func (l *Ledger) UpdateItemReceivedQuantity(storeID id.ID, itemID string, received float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).UpdateItemReceivedQuantity(itemID, received)
}

// Apply runs an arbitrary mutation against the store's draft under the
// ledger lock. Used for the simple field setters.
func (l *Ledger) Apply(storeID id.ID, fn func(d *Draft)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.draft(storeID))
}

// UpdatePayment accumulates a payment on the store's draft.
func (l *Ledger) UpdatePayment(storeID id.ID, amount types.Money) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft(storeID).UpdatePayment(amount)
}

// Reset replaces the store's draft with a fresh empty one.
func (l *Ledger) Reset(storeID id.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.drafts[storeID] = NewDraft()
}

// ResetAll replaces every store's draft with a fresh empty one.
func (l *Ledger) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.drafts = make(map[id.ID]*Draft)
}

// Load overwrites the store's draft wholesale, e.g. when hydrating a draft
// fetched from storage. A nil draft resets the store.
func (l *Ledger) Load(storeID id.ID, d *Draft) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d == nil {
		l.drafts[storeID] = NewDraft()
		return
	}
	l.drafts[storeID] = d.Clone()
}

// Stores returns the ids of all stores with a materialized draft.
func (l *Ledger) Stores() []id.ID {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]id.ID, 0, len(l.drafts))
	for sid := range l.drafts {
		out = append(out, sid)
	}
	return out
}
