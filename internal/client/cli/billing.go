package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/services"
)

// cmdPlan is the tenant billing screen:
//
//	plan                  show the current subscription
//	plan options          list plans available to switch to
//	plan change <id>      hand off to the external payment page
//	plan confirm <url>    paste the return URL to finish a plan change
//
// Payment itself happens on the external page; this screen only hands off
// and reads the result back.
func (a *App) cmdPlan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.showSubscription(ctx)
	}

	switch args[0] {
	case "options":
		return a.listPlanOptions(ctx)

	case "change":
		if len(args) < 2 {
			printlnFn("Usage: plan change <plan-id>")
			return nil
		}
		checkout, orderID, err := a.billing.CheckoutURL(args[1])
		if err != nil {
			return err
		}
		printlnFn("Open this page to complete the payment:")
		printlnFn("  " + checkout)
		printlnFn("Order id: " + orderID)
		printlnFn("Afterwards, paste the URL you were redirected to: plan confirm <url>")
		return nil

	case "confirm":
		if len(args) < 2 {
			printlnFn("Usage: plan confirm <url>")
			return nil
		}
		res, err := services.ParseCheckoutReturn(args[1])
		if err != nil {
			return err
		}
		if !res.Succeeded {
			if res.Reason != "" {
				printlnFn("Payment did not complete:", res.Reason)
			} else {
				printlnFn("Payment did not complete.")
			}
		}
		sub, err := a.billing.Confirm(ctx, res)
		if err != nil {
			return err
		}
		printlnFn("Current plan:", sub.PlanName, "("+sub.Status+")")
		return nil

	default:
		printlnFn("Unknown subcommand:", args[0])
		return nil
	}
}

func (a *App) showSubscription(ctx context.Context) error {
	sub, err := a.billing.Current(ctx)
	if err != nil {
		return err
	}
	printlnFn("Plan:  ", sub.PlanName)
	printlnFn("Status:", sub.Status)
	if !sub.RenewsAt.IsZero() {
		printlnFn("Renews:", sub.RenewsAt.Local().Format(time.DateOnly))
	}
	return nil
}

func (a *App) listPlanOptions(ctx context.Context) error {
	plans, err := a.plans.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		if !p.IsActive {
			continue
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			strconv.FormatInt(p.MonthlyQuota, 10),
			formatPrice(p.PriceCents, p.Currency),
		})
	}
	renderTable([]string{"ID", "NAME", "QUOTA/MO", "PRICE"}, rows)
	return nil
}
