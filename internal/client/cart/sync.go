package cart

import (
	"context"
	"fmt"

	"github.com/rnand/qkart-v2/internal/client/api"
	"github.com/rnand/qkart-v2/internal/logging"
)

// Mode tags the origin of a cart mutation. The duplicate-prevention rule
// applies only to adds coming from a catalog card; the cart's own
// quantity stepper bypasses it because the endpoint has upsert semantics.
type Mode int

const (
	// ModeStrictAdd rejects the mutation locally when the product is
	// already in the cart: duplicate adds must not silently change the
	// quantity through the add path.
	ModeStrictAdd Mode = iota

	// ModeQuantityUpdate always sends the request; the server overwrites
	// the quantity to the given value.
	ModeQuantityUpdate
)

// Controller orchestrates cart requests against the backend and feeds
// confirmed responses into the Reconciler. It does not serialize
// overlapping actions; the sequence guard in the Reconciler keeps a
// stale response from overwriting a newer one.
type Controller struct {
	client api.Client
	rec    *Reconciler
	log    logging.Logger
}

func NewController(client api.Client, rec *Reconciler, log logging.Logger) *Controller {
	return &Controller{client: client, rec: rec, log: log}
}

// FetchCart loads the authoritative line-item list for the token's user
// and replaces the reconciler state.
func (c *Controller) FetchCart(ctx context.Context, token string) error {
	if token == "" {
		return api.ErrUnauthorized
	}

	seq := c.rec.Begin()
	items, err := c.client.Cart(ctx, token)
	if err != nil {
		return err
	}
	if !c.rec.Apply(seq, items) {
		c.log.Warn(ctx, "discarding stale cart fetch response", "seq", seq)
	}
	return nil
}

// Mutate adds or updates one line item.
//
// Preconditions: token non-empty, qty positive. In ModeStrictAdd a
// product already present in the cart is rejected with
// api.ErrDuplicateCartEntry before any network call. On success the
// response replaces the reconciler state; on failure the state is left
// untouched.
func (c *Controller) Mutate(ctx context.Context, token, productID string, qty int, mode Mode) error {
	if token == "" {
		return api.ErrUnauthorized
	}
	if productID == "" {
		return fmt.Errorf("%w: product id is required", api.ErrValidation)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", api.ErrValidation)
	}

	if mode == ModeStrictAdd && c.rec.Contains(productID) {
		return api.ErrDuplicateCartEntry
	}

	seq := c.rec.Begin()
	items, err := c.client.PostCart(ctx, token, productID, qty)
	if err != nil {
		return err
	}
	if !c.rec.Apply(seq, items) {
		c.log.Warn(ctx, "discarding stale cart mutate response", "seq", seq, "productId", productID)
	}
	return nil
}
