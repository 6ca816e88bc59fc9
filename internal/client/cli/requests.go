package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/services"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/tableview"
)

const requestsPageSize = 20

// cmdRequests renders the request-log screen. Filtering happens server-side;
// sorting and pagination happen client-side over the returned rows:
//
//	requests [pass|fail] [page] [-sort=time|latency]
func (a *App) cmdRequests(ctx context.Context, args []string) error {
	filter := services.RequestLogFilter{Limit: 500}
	page := 1
	sortKey := "time"

	for _, arg := range args {
		switch {
		case arg == models.ResultPass || arg == models.ResultFail:
			filter.Result = arg
		case strings.HasPrefix(arg, "-sort="):
			sortKey = strings.TrimPrefix(arg, "-sort=")
		default:
			if n, err := strconv.Atoi(arg); err == nil && n > 0 {
				page = n
			}
		}
	}

	logs, err := a.requests.List(ctx, filter)
	if err != nil {
		return err
	}

	table := tableview.New(logs)
	switch sortKey {
	case "latency":
		table.Sort(func(x, y models.RequestLog) bool { return x.LatencyMS > y.LatencyMS })
	default:
		table.Sort(func(x, y models.RequestLog) bool { return x.CreatedAt.After(y.CreatedAt) })
	}

	p := table.Page(page, requestsPageSize)
	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, []string{
			r.CreatedAt.Local().Format(time.DateTime),
			r.CaptchaType,
			r.Result,
			r.ClientIP,
			strconv.Itoa(r.LatencyMS) + "ms",
		})
	}
	renderTable([]string{"TIME", "TYPE", "RESULT", "IP", "LATENCY"}, rows)
	printlnFn(fmt.Sprintf("Page %d/%d (%d requests)", p.Number, p.TotalPages, p.TotalRows))
	return nil
}
