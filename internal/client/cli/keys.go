package cli

import (
	"context"
	"time"
)

// cmdKeys renders and mutates the API-key screen:
//
//	keys                 list keys
//	keys create <label>  issue a new key (secret shown once)
//	keys revoke <id>     revoke a key
//	keys regen <id>      replace a key's secret (shown once)
func (a *App) cmdKeys(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listKeys(ctx)
	}

	switch args[0] {
	case "create":
		if len(args) < 2 {
			printlnFn("Usage: keys create <label>")
			return nil
		}
		key, err := a.keys.Create(ctx, args[1])
		if err != nil {
			return err
		}
		printlnFn("Created key", key.ID)
		printlnFn("Secret (store it now, it will not be shown again):", key.Secret)
		return nil

	case "revoke":
		if len(args) < 2 {
			printlnFn("Usage: keys revoke <id>")
			return nil
		}
		if err := a.keys.Revoke(ctx, args[1]); err != nil {
			return err
		}
		printlnFn("Revoked key", args[1])
		return nil

	case "regen":
		if len(args) < 2 {
			printlnFn("Usage: keys regen <id>")
			return nil
		}
		key, err := a.keys.Regenerate(ctx, args[1])
		if err != nil {
			return err
		}
		printlnFn("New secret (store it now, it will not be shown again):", key.Secret)
		return nil

	default:
		printlnFn("Unknown subcommand:", args[0])
		return nil
	}
}

func (a *App) listKeys(ctx context.Context) error {
	keys, err := a.keys.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		status := "active"
		if k.Disabled {
			status = "disabled"
		}
		lastUsed := "never"
		if k.LastUsedAt != nil {
			lastUsed = k.LastUsedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{k.ID, k.Label, k.Prefix + "…", status, lastUsed})
	}
	renderTable([]string{"ID", "LABEL", "KEY", "STATUS", "LAST USED"}, rows)
	return nil
}
