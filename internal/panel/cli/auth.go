package cli

import (
	"context"
	"os"

	"github.com/Mystogan321/useradmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session gate.
// On success the user list is fetched and rendered. The password byte slice
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in as", a.gate.User().Email)
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.gate.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}
	printlnFn("Welcome,", u.Name)

	if err := a.coord.Refresh(ctx); err != nil {
		printlnFn("Could not load users:", err.Error())
		return err
	}
	return a.List(ctx)
}

// Logout signs out and clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.Logout(ctx); err != nil {
		printlnFn("Logout finished with errors:", err.Error())
		return err
	}
	printlnFn("Signed out.")
	return nil
}
