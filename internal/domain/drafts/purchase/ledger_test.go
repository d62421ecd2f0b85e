package purchase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailops/internal/core/id"
	"retailops/internal/core/types"
)

func TestLedger_StoreIsolation(t *testing.T) {
	l := NewLedger()
	storeA := id.New()
	storeB := id.New()

	l.AddItem(storeA, item("prod-1", "", 2, "10"))
	l.AddItem(storeB, item("prod-2", "", 1, "5"))

	a := l.Get(storeA)
	b := l.Get(storeB)

	require.Len(t, a.Items, 1)
	require.Len(t, b.Items, 1)
	assert.Equal(t, "prod-1", a.Items[0].ProductID)
	assert.Equal(t, "prod-2", b.Items[0].ProductID)

	l.Reset(storeA)
	assert.Empty(t, l.Get(storeA).Items)
	assert.Len(t, l.Get(storeB).Items, 1)
}

func TestLedger_GetReturnsEmptyDefaultWithoutMaterializing(t *testing.T) {
	l := NewLedger()
	storeID := id.New()

	d := l.Get(storeID)
	require.NotNil(t, d)
	assert.Empty(t, d.Items)
	assert.Equal(t, PaymentPending, d.PaymentStatus)
	assert.Empty(t, l.Stores())
}

func TestLedger_GetReturnsSnapshot(t *testing.T) {
	l := NewLedger()
	storeID := id.New()
	l.AddItem(storeID, item("prod-1", "", 2, "10"))

	snap := l.Get(storeID)
	snap.Items[0].Quantity = 999
	snap.SetNotes("mutated copy")

	fresh := l.Get(storeID)
	assert.Equal(t, 2.0, fresh.Items[0].Quantity)
	assert.Empty(t, fresh.Notes)
}

func TestLedger_ResetIdempotent(t *testing.T) {
	l := NewLedger()
	storeID := id.New()

	l.AddItem(storeID, item("prod-1", "", 2, "10"))
	l.UpdatePayment(storeID, types.MustMoney("5"))

	l.Reset(storeID)
	first := l.Get(storeID)
	l.Reset(storeID)
	l.Reset(storeID)
	again := l.Get(storeID)

	assert.Equal(t, first, again)
	assert.Empty(t, again.Items)
	assert.True(t, again.AmountPaid.IsZero())
	assert.Equal(t, PaymentPending, again.PaymentStatus)
}

func TestLedger_ResetAll(t *testing.T) {
	l := NewLedger()
	storeA := id.New()
	storeB := id.New()
	l.AddItem(storeA, item("prod-1", "", 1, "1"))
	l.AddItem(storeB, item("prod-2", "", 1, "1"))

	l.ResetAll()

	assert.Empty(t, l.Get(storeA).Items)
	assert.Empty(t, l.Get(storeB).Items)
	assert.Empty(t, l.Stores())
}

func TestLedger_LoadOverwritesWholesale(t *testing.T) {
	l := NewLedger()
	storeID := id.New()
	l.AddItem(storeID, item("prod-1", "", 1, "1"))

	hydrated := NewDraft()
	hydrated.AddItem(item("prod-7", "", 3, "4"))
	hydrated.SetSupplier("sup-1")
	hydrated.SetStatus("submitted")
	l.Load(storeID, hydrated)

	// Later changes to the source draft must not leak into the ledger
	hydrated.SetNotes("changed after load")

	got := l.Get(storeID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "prod-7", got.Items[0].ProductID)
	assert.Equal(t, "submitted", got.Status)
	assert.Empty(t, got.Notes)

	l.Load(storeID, nil)
	assert.Empty(t, l.Get(storeID).Items)
}

func TestLedger_ApplyRunsSetterUnderLock(t *testing.T) {
	l := NewLedger()
	storeID := id.New()

	l.Apply(storeID, func(d *Draft) {
		d.SetSupplier("sup-3")
		d.SetPurchaseType(PurchaseTypeOwnPurchase)
	})

	got := l.Get(storeID)
	assert.Equal(t, "sup-3", got.SupplierID)
	assert.Equal(t, PurchaseTypeOwnPurchase, got.PurchaseType)
}

func TestLedger_ConcurrentMutationsStayConsistent(t *testing.T) {
	l := NewLedger()
	storeID := id.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.AddItem(storeID, item("prod-1", "stock-1", 1, "2"))
		}()
	}
	wg.Wait()

	got := l.Get(storeID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 50.0, got.Items[0].Quantity)
	assert.True(t, got.GrandTotal.Equal(types.MustMoney("100")))
}
