package cli

import (
	"context"
	"os"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/tableview"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/common"
)

// cmdUsers is the admin user-management screen:
//
//	users               list users
//	users create        interactive create
//	users edit <id>     interactive edit
//	users delete <id>   delete a user
func (a *App) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listUsers(ctx)
	}

	switch args[0] {
	case "create":
		return a.createUser(ctx)

	case "edit":
		if len(args) < 2 {
			printlnFn("Usage: users edit <id>")
			return nil
		}
		return a.editUser(ctx, args[1])

	case "delete":
		if len(args) < 2 {
			printlnFn("Usage: users delete <id>")
			return nil
		}
		if err := a.users.Delete(ctx, args[1]); err != nil {
			return err
		}
		printlnFn("Deleted user", args[1])
		return nil

	default:
		printlnFn("Unknown subcommand:", args[0])
		return nil
	}
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	table := tableview.New(users).Sort(func(x, y models.User) bool { return x.Email < y.Email })
	rows := make([][]string, 0, table.Len())
	for _, u := range table.Rows() {
		role := "member"
		if u.IsAdmin {
			role = "admin"
		}
		rows = append(rows, []string{u.ID, u.Email, u.Name, role, u.CreatedAt.Local().Format(time.DateOnly)})
	}
	renderTable([]string{"ID", "EMAIL", "NAME", "ROLE", "CREATED"}, rows)
	return nil
}

func (a *App) createUser(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	admin, err := getSimpleText(a.reader, "Administrator? (y/N)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Create(ctx, models.NewUser{
		Email:    email,
		Name:     name,
		Password: string(password),
		IsAdmin:  admin == "y" || admin == "Y",
	})
	if err != nil {
		return err
	}
	printlnFn("Created user", user.ID)
	return nil
}

func (a *App) editUser(ctx context.Context, id string) error {
	// Empty input leaves a field unchanged.
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New display name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var upd models.UserUpdate
	if email != "" {
		upd.Email = &email
	}
	if name != "" {
		upd.Name = &name
	}
	if upd.Email == nil && upd.Name == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	user, err := a.users.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	printlnFn("Updated user", user.ID)
	return nil
}
