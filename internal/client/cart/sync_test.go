package cart

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rnand/qkart-v2/internal/client/api"
	"github.com/rnand/qkart-v2/internal/client/models"
	"github.com/rnand/qkart-v2/internal/logging"
)

// fakeClient implements api.Client for Controller tests. Catalog and
// auth methods are unused here but must satisfy the interface.
type fakeClient struct {
	CartRet []models.CartLineItem
	CartErr error

	PostCartRet []models.CartLineItem
	PostCartErr error

	// per-call hook, lets a test change behavior between requests
	PostCartFn func(productID string, qty int) ([]models.CartLineItem, error)

	CartCalls     int
	PostCartCalls int

	LastToken     string
	LastProductID string
	LastQty       int
}

func (f *fakeClient) Products(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeClient) SearchProducts(ctx context.Context, value string) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.LoginResult, error) {
	return nil, nil
}

func (f *fakeClient) Register(ctx context.Context, username, password string) error {
	return nil
}

func (f *fakeClient) Cart(ctx context.Context, token string) ([]models.CartLineItem, error) {
	f.CartCalls++
	f.LastToken = token
	return append([]models.CartLineItem(nil), f.CartRet...), f.CartErr
}

func (f *fakeClient) PostCart(ctx context.Context, token, productID string, qty int) ([]models.CartLineItem, error) {
	f.PostCartCalls++
	f.LastToken = token
	f.LastProductID = productID
	f.LastQty = qty
	if f.PostCartFn != nil {
		return f.PostCartFn(productID, qty)
	}
	return append([]models.CartLineItem(nil), f.PostCartRet...), f.PostCartErr
}

func newController(fc *fakeClient) (*Controller, *Reconciler) {
	rec := NewReconciler()
	return NewController(fc, rec, logging.NewDiscardLogger()), rec
}

func TestFetchCart_ReplacesReconcilerState(t *testing.T) {
	fc := &fakeClient{CartRet: []models.CartLineItem{{ProductID: "A", Qty: 3}}}
	c, rec := newController(fc)

	require.NoError(t, c.FetchCart(context.Background(), "testtoken"))
	require.Equal(t, 1, fc.CartCalls)
	require.Equal(t, "testtoken", fc.LastToken)
	require.True(t, rec.Contains("A"))
}

func TestFetchCart_EmptyTokenNeverHitsNetwork(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newController(fc)

	err := c.FetchCart(context.Background(), "")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Zero(t, fc.CartCalls)
}

func TestMutate_StrictAddDuplicateIsLocalRejection(t *testing.T) {
	fc := &fakeClient{}
	c, rec := newController(fc)
	rec.SetCart([]models.CartLineItem{{ProductID: "A", Qty: 1}})

	err := c.Mutate(context.Background(), "testtoken", "A", 1, ModeStrictAdd)
	require.ErrorIs(t, err, api.ErrDuplicateCartEntry)
	require.Zero(t, fc.PostCartCalls)

	// State untouched by the rejection.
	items := rec.Items()
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Qty)
}

func TestMutate_QuantityUpdateBypassesDuplicateCheck(t *testing.T) {
	fc := &fakeClient{PostCartRet: []models.CartLineItem{{ProductID: "A", Qty: 5}}}
	c, rec := newController(fc)
	rec.SetCart([]models.CartLineItem{{ProductID: "A", Qty: 1}})

	require.NoError(t, c.Mutate(context.Background(), "testtoken", "A", 5, ModeQuantityUpdate))
	require.Equal(t, 1, fc.PostCartCalls)
	require.Equal(t, 5, fc.LastQty)

	items := rec.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Qty)
}

func TestMutate_ValidationFailuresNeverReachNetwork(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newController(fc)
	ctx := context.Background()

	require.ErrorIs(t, c.Mutate(ctx, "", "A", 1, ModeStrictAdd), api.ErrUnauthorized)
	require.ErrorIs(t, c.Mutate(ctx, "testtoken", "", 1, ModeStrictAdd), api.ErrValidation)
	require.ErrorIs(t, c.Mutate(ctx, "testtoken", "A", 0, ModeStrictAdd), api.ErrValidation)
	require.ErrorIs(t, c.Mutate(ctx, "testtoken", "A", -2, ModeQuantityUpdate), api.ErrValidation)
	require.Zero(t, fc.PostCartCalls)
}

func TestMutate_FailureLeavesStateUntouched(t *testing.T) {
	fc := &fakeClient{PostCartErr: &api.ServerError{Status: http.StatusNotFound, Message: "Product doesn't exist"}}
	c, rec := newController(fc)
	rec.SetCart([]models.CartLineItem{{ProductID: "A", Qty: 2}})

	err := c.Mutate(context.Background(), "testtoken", "nope", 1, ModeStrictAdd)
	var se *api.ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Product doesn't exist", se.Message)

	items := rec.Items()
	require.Len(t, items, 1)
	require.Equal(t, "A", items[0].ProductID)
	require.Equal(t, 2, items[0].Qty)
}

// Mirrors the full add/duplicate/update flow: one POST creates the line
// item, a repeated strict add is rejected without network traffic, and a
// quantity update issues exactly one more POST.
func TestMutate_AddThenDuplicateThenUpdateScenario(t *testing.T) {
	products := []models.Product{{ID: "A", Cost: decimal.NewFromInt(100)}}
	fc := &fakeClient{}
	c, rec := newController(fc)
	ctx := context.Background()

	fc.PostCartFn = func(productID string, qty int) ([]models.CartLineItem, error) {
		return []models.CartLineItem{{ProductID: productID, Qty: qty}}, nil
	}

	require.NoError(t, c.Mutate(ctx, "testtoken", "A", 1, ModeStrictAdd))
	require.Equal(t, 1, fc.PostCartCalls)
	require.True(t, rec.ComputeTotal(products).Equal(decimal.NewFromInt(100)))

	err := c.Mutate(ctx, "testtoken", "A", 1, ModeStrictAdd)
	require.ErrorIs(t, err, api.ErrDuplicateCartEntry)
	require.Equal(t, 1, fc.PostCartCalls)

	require.NoError(t, c.Mutate(ctx, "testtoken", "A", 3, ModeQuantityUpdate))
	require.Equal(t, 2, fc.PostCartCalls)
	require.True(t, rec.ComputeTotal(products).Equal(decimal.NewFromInt(300)))
}
