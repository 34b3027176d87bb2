package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rnand/qkart-v2/internal/client/api"
	"github.com/rnand/qkart-v2/internal/client/cart"
	"github.com/rnand/qkart-v2/internal/client/catalog"
	"github.com/rnand/qkart-v2/internal/client/config"
	"github.com/rnand/qkart-v2/internal/client/session"
	"github.com/rnand/qkart-v2/internal/client/storage"
	"github.com/rnand/qkart-v2/internal/logging"
)

// App wires the storefront components together and carries the I/O the
// command handlers use.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	guard   *session.Guard
	catalog *catalog.Store
	rec     *cart.Reconciler
	cart    *cart.Controller
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the session database, restores the durable session, and
// constructs the catalog store and cart controller over a shared REST
// client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	guard := session.NewGuard(db)
	if err := guard.Init(ctx); err != nil {
		return nil, err
	}

	apiClient := api.NewRESTClient(c.EndpointURL, c.RequestTimeout)
	rec := cart.NewReconciler()

	return &App{
		config:  c,
		log:     log,
		api:     apiClient,
		guard:   guard,
		catalog: catalog.NewStore(apiClient, c.SearchDebounceWindow, log),
		rec:     rec,
		cart:    cart.NewController(apiClient, rec, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run loads the catalog, restores the cart for a remembered session,
// and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.catalog.Close()

	a.advise("Welcome to QKart (type 'help' for commands)")

	if _, err := a.catalog.LoadAll(ctx); err != nil {
		a.adviseError(err)
	}

	if a.guard.IsAuthenticated() {
		err := a.guard.RequireAuth(func(token string) error {
			return a.cart.FetchCart(ctx, token)
		})
		if err != nil {
			a.adviseError(err)
		}
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.guard.IsAuthenticated()
}

// status renders the prompt decoration: "(username)" when logged in.
func (a *App) status() string {
	if name := a.guard.Username(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}

// advise prints a user-facing message.
func (a *App) advise(msg string) {
	fmt.Fprintln(a.out, msg)
}

// adviseError translates an error into the advisory shown to the user.
// Errors are terminal at this boundary; nothing is rethrown.
func (a *App) adviseError(err error) {
	var se *api.ServerError
	switch {
	case errors.As(err, &se):
		a.advise(se.Message)
	case errors.Is(err, api.ErrUnavailable):
		a.advise("Could not reach the backend. Check that it is running, reachable and returns valid JSON.")
	case errors.Is(err, api.ErrUnauthorized):
		a.advise("Please login to manage your cart.")
	default:
		a.advise(err.Error())
	}
}
