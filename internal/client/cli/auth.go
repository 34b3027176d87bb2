package cli

import (
	"context"
	"fmt"

	"github.com/rnand/qkart-v2/internal/client/api"
)

// validateLoginInput runs the local checks that must pass before any
// login request is sent.
func validateLoginInput(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: Username is a required field", api.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: Password is a required field", api.ErrValidation)
	}
	return nil
}

// validateRegisterInput runs the local checks for a registration
// attempt; bad values never reach the backend.
func validateRegisterInput(username, password, confirm string) error {
	if username == "" {
		return fmt.Errorf("%w: Username is a required field", api.ErrValidation)
	}
	if len(username) < 6 {
		return fmt.Errorf("%w: Username must be at least 6 characters", api.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: Password is a required field", api.ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: Password must be at least 6 characters", api.ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: Passwords do not match", api.ErrValidation)
	}
	return nil
}

// Login prompts for credentials, authenticates against the backend, and
// persists the issued session. A remembered cart is fetched right away
// so the cart commands reflect the server state.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := validateLoginInput(username, password); err != nil {
		a.adviseError(err)
		return err
	}

	res, err := a.api.Login(ctx, username, password)
	if err != nil {
		a.adviseError(err)
		return err
	}

	if err := a.guard.Set(ctx, res.Token, res.Username, res.Balance); err != nil {
		a.adviseError(err)
		return err
	}
	a.advise("Logged in successfully")

	if err := a.cart.FetchCart(ctx, res.Token); err != nil {
		a.adviseError(err)
	}
	return nil
}

// Register prompts for a username and password (entered twice) and
// creates the account. The user still logs in explicitly afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := validateRegisterInput(username, password, confirm); err != nil {
		a.adviseError(err)
		return err
	}

	if err := a.api.Register(ctx, username, password); err != nil {
		a.adviseError(err)
		return err
	}
	a.advise("Registered successfully")
	return nil
}

// Logout clears the durable session record atomically and drops the
// local cart view, returning the client to anonymous mode.
func (a *App) Logout(ctx context.Context) error {
	if err := a.guard.Clear(ctx); err != nil {
		a.adviseError(err)
		return err
	}
	a.rec.Clear()
	a.advise("Logged out")
	return nil
}
