package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rnand/qkart-v2/internal/client/api"
	"github.com/rnand/qkart-v2/internal/client/models"
	"github.com/rnand/qkart-v2/internal/logging"
)

// fakeClient implements api.Client for Store tests; cart and auth
// methods are unused.
type fakeClient struct {
	mu sync.Mutex

	ProductsRet []models.Product
	ProductsErr error

	SearchRet map[string][]models.Product
	SearchErr error

	ProductsCalls int
	SearchCalls   int
	SearchQueries []string
}

func (f *fakeClient) Products(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ProductsCalls++
	return append([]models.Product(nil), f.ProductsRet...), f.ProductsErr
}

func (f *fakeClient) SearchProducts(ctx context.Context, value string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SearchCalls++
	f.SearchQueries = append(f.SearchQueries, value)
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}
	return append([]models.Product(nil), f.SearchRet[value]...), nil
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.LoginResult, error) {
	return nil, nil
}

func (f *fakeClient) Register(ctx context.Context, username, password string) error {
	return nil
}

func (f *fakeClient) Cart(ctx context.Context, token string) ([]models.CartLineItem, error) {
	return nil, nil
}

func (f *fakeClient) PostCart(ctx context.Context, token, productID string, qty int) ([]models.CartLineItem, error) {
	return nil, nil
}

func (f *fakeClient) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.SearchQueries...)
}

func phone() models.Product { return models.Product{ID: "p1", Name: "iPhone XR"} }
func ball() models.Product  { return models.Product{ID: "p2", Name: "Basketball"} }

func newStore(fc api.Client, window time.Duration) *Store {
	return NewStore(fc, window, logging.NewDiscardLogger())
}

func TestLoadAll_ReplacesViewWholesale(t *testing.T) {
	fc := &fakeClient{ProductsRet: []models.Product{phone(), ball()}}
	s := newStore(fc, time.Second)

	require.False(t, s.Loaded())

	products, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.True(t, s.Loaded())
	require.False(t, s.EmptySearch())
	require.Equal(t, "iPhone XR", s.View()[0].Name)
}

func TestLoadAll_FailureLeavesEmptyLoadingCompleteState(t *testing.T) {
	fc := &fakeClient{ProductsErr: api.ErrUnavailable}
	s := newStore(fc, time.Second)

	_, err := s.LoadAll(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.True(t, s.Loaded())
	require.Empty(t, s.View())
}

func TestSearch_ResultBecomesCurrentView(t *testing.T) {
	fc := &fakeClient{
		ProductsRet: []models.Product{phone(), ball()},
		SearchRet:   map[string][]models.Product{"phone": {phone()}},
	}
	s := newStore(fc, time.Second)
	ctx := context.Background()

	_, err := s.LoadAll(ctx)
	require.NoError(t, err)

	_, err = s.Search(ctx, "phone")
	require.NoError(t, err)
	require.Len(t, s.View(), 1)
	require.False(t, s.EmptySearch())
	require.Len(t, s.Full(), 2, "search must not shrink the full catalog")
}

func TestSearch_EmptyResultSetsExplicitFlag(t *testing.T) {
	fc := &fakeClient{SearchRet: map[string][]models.Product{}}
	s := newStore(fc, time.Second)

	// Before any search the flag is down even though nothing is loaded.
	require.False(t, s.EmptySearch())

	_, err := s.Search(context.Background(), "unobtainium")
	require.NoError(t, err)
	require.True(t, s.EmptySearch())
	require.Empty(t, s.View())
}

func TestSearch_FailureClearsViewAndSetsFlag(t *testing.T) {
	fc := &fakeClient{
		ProductsRet: []models.Product{phone()},
		SearchErr:   api.ErrUnavailable,
	}
	s := newStore(fc, time.Second)
	ctx := context.Background()

	_, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, s.View())

	_, err = s.Search(ctx, "phone")
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.True(t, s.EmptySearch())
	require.Empty(t, s.View(), "stale results must not survive a failed search")
}

func TestSearch_BlankQueryRestoresFullCatalog(t *testing.T) {
	fc := &fakeClient{
		ProductsRet: []models.Product{phone(), ball()},
		SearchRet:   map[string][]models.Product{"phone": {phone()}},
	}
	s := newStore(fc, time.Second)
	ctx := context.Background()

	_, err := s.LoadAll(ctx)
	require.NoError(t, err)
	_, err = s.Search(ctx, "phone")
	require.NoError(t, err)
	require.Len(t, s.View(), 1)

	_, err = s.Search(ctx, "   ")
	require.NoError(t, err)
	require.Len(t, s.View(), 2)
	require.False(t, s.EmptySearch())
	require.Equal(t, 2, fc.ProductsCalls)
	require.Equal(t, 1, fc.SearchCalls)
}

func TestQueueSearch_BurstDispatchesOnceWithLastValue(t *testing.T) {
	fc := &fakeClient{SearchRet: map[string][]models.Product{"iphone": {phone()}}}
	s := newStore(fc, 40*time.Millisecond)
	done := make(chan error, 1)

	for _, q := range []string{"i", "ip", "iph", "ipho", "iphon", "iphone"} {
		s.QueueSearch(context.Background(), q, func(err error) { done <- err })
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never dispatched")
	}

	require.Equal(t, []string{"iphone"}, fc.queries())
	require.Len(t, s.View(), 1)
}

// gatedClient lets a test hold a search response until released, to
// force out-of-order completion.
type gatedClient struct {
	fakeClient
	started chan string
	release map[string]chan []models.Product
}

func (g *gatedClient) SearchProducts(ctx context.Context, value string) ([]models.Product, error) {
	g.started <- value
	return <-g.release[value], nil
}

func TestSearch_StaleResponseIsDiscarded(t *testing.T) {
	gc := &gatedClient{
		started: make(chan string, 2),
		release: map[string]chan []models.Product{
			"slow": make(chan []models.Product, 1),
			"fast": make(chan []models.Product, 1),
		},
	}
	s := newStore(gc, time.Second)
	ctx := context.Background()

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		s.Search(ctx, "slow")
	}()
	require.Equal(t, "slow", <-gc.started)

	fastDone := make(chan struct{})
	go func() {
		defer close(fastDone)
		s.Search(ctx, "fast")
	}()
	require.Equal(t, "fast", <-gc.started)

	// The later request completes first and is applied.
	gc.release["fast"] <- []models.Product{ball()}
	<-fastDone

	// The earlier request completes afterwards and must be discarded.
	gc.release["slow"] <- []models.Product{phone()}
	<-slowDone

	view := s.View()
	require.Len(t, view, 1)
	require.Equal(t, "Basketball", view[0].Name)
}
