package api

import (
	"context"

	"github.com/rnand/qkart-v2/internal/client/models"
)

// LoginResult carries the fields the backend returns on a successful
// login. Balance is kept in its string form; it is persisted verbatim
// in the session record.
type LoginResult struct {
	Token    string
	Username string
	Balance  string
}

// Client is the transport-agnostic contract for the QKart backend.
//
// Contract:
//   - Products: fetch the full catalog.
//   - SearchProducts: fetch the catalog filtered by a search term. An
//     empty result is a valid outcome, not an error.
//   - Login/Register: authenticate or create an account.
//   - Cart: fetch the authoritative line-item list for the token's user.
//   - PostCart: upsert a line item (create if absent, otherwise overwrite
//     the quantity); returns the full updated line-item list.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Products(ctx context.Context) ([]models.Product, error)
	SearchProducts(ctx context.Context, value string) ([]models.Product, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, password string) error
	Cart(ctx context.Context, token string) ([]models.CartLineItem, error)
	PostCart(ctx context.Context, token, productID string, qty int) ([]models.CartLineItem, error)
}
