package models

import "github.com/shopspring/decimal"

// CartLineItem is the server-owned unit of cart state: a product reference
// plus a quantity. At most one line item exists per product; the backend
// creates, updates, and deletes them in response to sync requests, so the
// client treats every received list as the authoritative cart.
type CartLineItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// CartItem is the ephemeral join of a CartLineItem with its Product, used
// only for rendering and total computation. It is recomputed whenever the
// cart or the catalog changes and is never persisted.
type CartItem struct {
	Product Product
	Qty     int
}

// Subtotal returns quantity * cost for this cart item.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Product.Cost.Mul(decimal.NewFromInt(int64(c.Qty)))
}
