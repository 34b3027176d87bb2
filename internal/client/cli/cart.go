package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rnand/qkart-v2/internal/client/api"
	"github.com/rnand/qkart-v2/internal/client/cart"
)

// ShowCart refreshes the cart from the backend and prints the line
// items joined with the catalog, in the order the server returned them.
func (a *App) ShowCart(ctx context.Context) error {
	err := a.guard.RequireAuth(func(token string) error {
		return a.cart.FetchCart(ctx, token)
	})
	if err != nil {
		a.adviseError(err)
		return err
	}

	view := a.rec.DeriveView(a.catalog.Full())
	if len(view) == 0 {
		a.advise("Your cart is empty")
		return nil
	}
	for _, item := range view {
		a.advise(fmt.Sprintf("%-18s  %-24s  x%d  $%s", item.Product.ID, item.Product.Name, item.Qty, item.Subtotal()))
	}
	a.advise(fmt.Sprintf("Total: $%s", a.rec.ComputeTotal(a.catalog.Full())))
	return nil
}

// Add adds a product from the catalog to the cart. A product that is
// already in the cart is rejected locally; quantity changes go through
// Update instead.
func (a *App) Add(ctx context.Context, productID string, qty int) error {
	err := a.guard.RequireAuth(func(token string) error {
		return a.cart.Mutate(ctx, token, productID, qty, cart.ModeStrictAdd)
	})
	if err != nil {
		if errors.Is(err, api.ErrDuplicateCartEntry) {
			a.advise("Item already in cart. Use 'update <productId> <qty>' to change its quantity.")
		} else {
			a.adviseError(err)
		}
		return err
	}
	a.advise("Added to cart")
	return nil
}

// Update sets a line item's quantity. The endpoint has upsert
// semantics, so this also works for a product not yet in the cart.
func (a *App) Update(ctx context.Context, productID string, qty int) error {
	err := a.guard.RequireAuth(func(token string) error {
		return a.cart.Mutate(ctx, token, productID, qty, cart.ModeQuantityUpdate)
	})
	if err != nil {
		a.adviseError(err)
		return err
	}
	a.advise("Cart updated")
	return nil
}

// Total prints the cart total over the currently derivable items.
func (a *App) Total(ctx context.Context) error {
	a.advise(fmt.Sprintf("Total: $%s", a.rec.ComputeTotal(a.catalog.Full())))
	return nil
}
