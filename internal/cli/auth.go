package cli

import (
	"context"
	"errors"
	"fmt"

	"slambook/internal/api"
)

// Signup registers a new account and leaves the session authenticated.
func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, name, email, password)
	if err != nil {
		a.reportAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Login authenticates against the server and persists the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.reportAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Name)
	return nil
}

// Logout clears the persisted session. The local database keeps its entries.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) reportAuthError(err error) {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later or switch to 'local' mode")
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Invalid credentials")
	default:
		fmt.Fprintln(a.out, err.Error())
	}
}
