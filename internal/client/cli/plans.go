package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// cmdPlans is the admin plan-management screen:
//
//	plans               list plans
//	plans create        interactive create
//	plans edit <id>     interactive edit
//	plans delete <id>   delete a plan
func (a *App) cmdPlans(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listPlans(ctx)
	}

	switch args[0] {
	case "create":
		return a.createPlan(ctx)

	case "edit":
		if len(args) < 2 {
			printlnFn("Usage: plans edit <id>")
			return nil
		}
		return a.editPlan(ctx, args[1])

	case "delete":
		if len(args) < 2 {
			printlnFn("Usage: plans delete <id>")
			return nil
		}
		if err := a.plans.Delete(ctx, args[1]); err != nil {
			return err
		}
		printlnFn("Deleted plan", args[1])
		return nil

	default:
		printlnFn("Unknown subcommand:", args[0])
		return nil
	}
}

func (a *App) listPlans(ctx context.Context) error {
	plans, err := a.plans.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		status := "active"
		if !p.IsActive {
			status = "inactive"
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			strconv.FormatInt(p.MonthlyQuota, 10),
			strconv.Itoa(p.RateLimit),
			formatPrice(p.PriceCents, p.Currency),
			status,
		})
	}
	renderTable([]string{"ID", "NAME", "QUOTA/MO", "RATE", "PRICE", "STATUS"}, rows)
	return nil
}

func formatPrice(cents int64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}

func (a *App) createPlan(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Plan name", os.Stdout)
	if err != nil {
		return err
	}
	quota, err := a.promptInt64("Monthly quota")
	if err != nil {
		return err
	}
	rate, err := a.promptInt64("Rate limit (req/s)")
	if err != nil {
		return err
	}
	price, err := a.promptInt64("Price (cents)")
	if err != nil {
		return err
	}

	plan, err := a.plans.Create(ctx, models.Plan{
		Name:         name,
		MonthlyQuota: quota,
		RateLimit:    int(rate),
		PriceCents:   price,
		IsActive:     true,
	})
	if err != nil {
		return err
	}
	printlnFn("Created plan", plan.ID)
	return nil
}

func (a *App) editPlan(ctx context.Context, id string) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	quotaRaw, err := getSimpleText(a.reader, "New monthly quota (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var upd models.PlanUpdate
	if name != "" {
		upd.Name = &name
	}
	if quotaRaw != "" {
		quota, err := strconv.ParseInt(quotaRaw, 10, 64)
		if err != nil {
			printlnFn("Not a number:", quotaRaw)
			return nil
		}
		upd.MonthlyQuota = &quota
	}
	if upd.Name == nil && upd.MonthlyQuota == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	plan, err := a.plans.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	printlnFn("Updated plan", plan.ID)
	return nil
}

func (a *App) promptInt64(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", raw)
	}
	return n, nil
}
