package cli

import (
	"context"
	"fmt"
	"strconv"
)

// cmdStats renders the analytics screen: headline counters, the per-type
// breakdown with share-of-total bars, and a daily series. Each block is
// loaded independently so one failed call does not blank the others.
func (a *App) cmdStats(ctx context.Context, args []string) error {
	days := 7
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			days = n
		}
	}

	sum, err := a.analytics.Summary(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Total: %d  passed: %d  failed: %d", sum.Total, sum.Passed, sum.Failed))
	if sum.QuotaLimit > 0 {
		printlnFn(fmt.Sprintf("Quota: %d / %d", sum.QuotaUsed, sum.QuotaLimit))
	}

	slices, err := a.analytics.Breakdown(ctx)
	if err != nil {
		a.printError(err)
	} else if len(slices) > 0 {
		printlnFn("")
		rows := make([][]string, 0, len(slices))
		for _, s := range slices {
			rows = append(rows, []string{
				s.CaptchaType,
				strconv.FormatInt(s.Count, 10),
				fmt.Sprintf("%.1f%%", s.Share),
				bar(s.Share),
			})
		}
		renderTable([]string{"TYPE", "COUNT", "SHARE", ""}, rows)
	}

	points, err := a.analytics.Timeseries(ctx, days)
	if err != nil {
		a.printError(err)
		return nil
	}
	if len(points) > 0 {
		printlnFn("")
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			rows = append(rows, []string{p.Date, strconv.FormatInt(p.Count, 10)})
		}
		renderTable([]string{"DATE", "REQUESTS"}, rows)
	}
	return nil
}
