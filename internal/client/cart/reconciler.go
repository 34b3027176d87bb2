// Package cart holds the client's view of the server-authoritative cart:
// a reconciler that merges line items with the catalog, and a sync
// controller that propagates add/update actions to the backend.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rnand/qkart-v2/internal/client/models"
)

// Reconciler holds the line items last reported by the server. State is
// only ever replaced wholesale from a confirmed response; the client
// never fabricates or locally mutates a quantity.
//
// Overlapping requests may complete out of order, so every state update
// is tagged with a sequence number taken at dispatch time (Begin) and a
// response older than the last applied one is discarded (Apply).
type Reconciler struct {
	mu      sync.Mutex
	items   []models.CartLineItem
	seq     uint64
	applied uint64
}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Begin reserves a sequence number for a request about to be dispatched.
func (r *Reconciler) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq
}

// Apply replaces the cart with items if seq is not older than the last
// applied update. It reports whether the update was applied.
func (r *Reconciler) Apply(seq uint64, items []models.CartLineItem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.applied {
		return false
	}
	r.applied = seq
	r.items = append([]models.CartLineItem(nil), items...)
	return true
}

// SetCart replaces the cart unconditionally with a fresh server response.
func (r *Reconciler) SetCart(items []models.CartLineItem) {
	r.Apply(r.Begin(), items)
}

// Clear drops all line items, used when the session ends.
func (r *Reconciler) Clear() {
	r.SetCart(nil)
}

// Items returns a copy of the current line items in server order.
func (r *Reconciler) Items() []models.CartLineItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.CartLineItem(nil), r.items...)
}

// Contains reports whether a line item for productID is present. It
// backs the add-vs-reject decision for strict adds.
func (r *Reconciler) Contains(productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// DeriveView joins the current line items with products, preserving the
// order the server returned the line items in. A line item whose product
// is no longer in the catalog is unrenderable and omitted; that is a
// defined degradation, not an error.
func (r *Reconciler) DeriveView(products []models.Product) []models.CartItem {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := r.Items()
	view := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		view = append(view, models.CartItem{Product: p, Qty: item.Qty})
	}
	return view
}

// ComputeTotal sums quantity * cost over all derivable cart items.
// Unresolvable line items contribute zero.
func (r *Reconciler) ComputeTotal(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.DeriveView(products) {
		total = total.Add(item.Subtotal())
	}
	return total
}
