package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/session"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// cmdLogin prompts for credentials and authenticates. The password buffer is
// wiped before returning; failures come back as error values and are
// translated by printError.
func (a *App) cmdLogin(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Login(ctx, email, string(password)); err != nil {
		return err
	}

	printlnFn("Signed in as " + email)
	return nil
}

func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

func (a *App) cmdWhoami(_ context.Context, _ []string) error {
	snap := a.store.Snapshot()

	printlnFn("Email:", snap.User.Email)
	printlnFn("Name: ", snap.User.Name)
	if snap.User.IsAdmin {
		printlnFn("Role:  administrator")
	} else {
		printlnFn("Role:  member")
	}
	if exp, ok := session.TokenExpiry(snap.Token); ok {
		printlnFn(fmt.Sprintf("Token: expires %s", exp.Local().Format(time.RFC1123)))
	}
	return nil
}
