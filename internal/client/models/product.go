// Package models defines the client-side data model for the QKart storefront:
// catalog products, server-held cart line items, and the derived cart view.
package models

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry as returned by the backend.
// Products are replaced wholesale on every catalog fetch and never
// mutated client-side.
type Product struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Rating   float64         `json:"rating"`
	Image    string          `json:"image"`
}
