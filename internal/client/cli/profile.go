package cli

import (
	"context"
	"os"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// cmdProfile shows or edits the logged-in user's profile:
//
//	profile        show
//	profile edit   interactive edit
func (a *App) cmdProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "edit" {
		return a.editProfile(ctx)
	}

	user, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}
	printlnFn("Email:", user.Email)
	printlnFn("Name: ", user.Name)
	return nil
}

func (a *App) editProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New display name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Nothing to change.")
		return nil
	}

	user, err := a.profile.Update(ctx, models.UserUpdate{Name: &name})
	if err != nil {
		return err
	}
	printlnFn("Profile updated:", user.Name)
	return nil
}
