// Package session implements the guard that gates cart operations on
// the presence of an authentication token. The durable session record
// (token, username, balance) is the sole switch between anonymous and
// authenticated operating modes.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/rnand/qkart-v2/internal/client/api"
	sessionrepo "github.com/rnand/qkart-v2/internal/client/repositories/session"
	"github.com/rnand/qkart-v2/internal/dbx"
)

// Guard is the single read/write point for the session record. All
// components read the session through it; only login (Set) and logout
// (Clear) mutate it, and both replace all fields atomically.
type Guard struct {
	db *sql.DB

	mu       sync.RWMutex
	token    string
	username string
	balance  string
}

func NewGuard(db *sql.DB) *Guard {
	return &Guard{db: db}
}

func (g *Guard) repo(db dbx.DBTX) sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(db)
}

// Init loads the durable session record, restoring an authenticated
// session across client restarts.
func (g *Guard) Init(ctx context.Context) error {
	repo := g.repo(g.db)

	token, err := repo.Get(ctx, sessionrepo.KeyToken)
	if err != nil {
		return fmt.Errorf("load session token: %w", err)
	}
	username, err := repo.Get(ctx, sessionrepo.KeyUsername)
	if err != nil {
		return fmt.Errorf("load session username: %w", err)
	}
	balance, err := repo.Get(ctx, sessionrepo.KeyBalance)
	if err != nil {
		return fmt.Errorf("load session balance: %w", err)
	}

	g.mu.Lock()
	g.token, g.username, g.balance = token, username, balance
	g.mu.Unlock()
	return nil
}

// Set persists a freshly issued session, writing all fields in a single
// transaction so a crash can never leave a partial record.
func (g *Guard) Set(ctx context.Context, token, username, balance string) error {
	err := dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := g.repo(tx)
		if err := repo.Set(ctx, sessionrepo.KeyToken, token); err != nil {
			return err
		}
		if err := repo.Set(ctx, sessionrepo.KeyUsername, username); err != nil {
			return err
		}
		return repo.Set(ctx, sessionrepo.KeyBalance, balance)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	g.mu.Lock()
	g.token, g.username, g.balance = token, username, balance
	g.mu.Unlock()
	return nil
}

// Clear wipes the durable session record and resets the in-memory
// fields, returning the client to anonymous mode.
func (g *Guard) Clear(ctx context.Context) error {
	if err := g.repo(g.db).Clear(ctx); err != nil {
		return err
	}

	g.mu.Lock()
	g.token, g.username, g.balance = "", "", ""
	g.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether a token is present.
func (g *Guard) IsAuthenticated() bool {
	return g.Token() != ""
}

func (g *Guard) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *Guard) Username() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.username
}

func (g *Guard) Balance() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.balance
}

// RequireAuth runs action with the current token, or returns
// api.ErrUnauthorized without attempting it when no token is present.
// Anonymous users never trigger a cart network call.
func (g *Guard) RequireAuth(action func(token string) error) error {
	token := g.Token()
	if token == "" {
		return api.ErrUnauthorized
	}
	return action(token)
}
