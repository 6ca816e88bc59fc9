package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/api"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/config"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/services"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/session"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/state"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	store  *session.Store
	reader *bufio.Reader

	users     *services.UserService
	plans     *services.PlanService
	keys      *services.APIKeyService
	requests  *services.RequestLogService
	analytics *services.AnalyticsService
	billing   *services.BillingService
	profile   *services.ProfileService

	commands map[string]command
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.OpenDatabase(ctx, state.DatabasePath(cfg.StateDir))
	if err != nil {
		return nil, fmt.Errorf("error initializing state database: %w", err)
	}

	sealer, err := state.NewSealer(ctx, db, cfg.StateDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	gw := api.NewGateway(cfg.APIBaseURL, cfg.RequestTimeout, log)
	store := session.NewStore(gw, db, sealer, log)
	gw.SetCredentials(store)

	a := &App{
		config:    cfg,
		log:       log,
		db:        db,
		store:     store,
		reader:    bufio.NewReader(os.Stdin),
		users:     services.NewUserService(gw),
		plans:     services.NewPlanService(gw),
		keys:      services.NewAPIKeyService(gw),
		requests:  services.NewRequestLogService(gw),
		analytics: services.NewAnalyticsService(gw),
		billing:   services.NewBillingService(gw, cfg.PaymentURL),
		profile:   services.NewProfileService(gw),
	}
	a.commands = a.buildCommands()
	return a, nil
}

// Run restores the persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	printlnFn("Find Your Humanity dashboard (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
	return a.Close()
}

func (a *App) Close() error {
	return a.db.Close()
}

// status renders the prompt suffix: the signed-in email, marked when the
// session carries admin privilege.
func (a *App) status() string {
	snap := a.store.Snapshot()
	if !snap.IsAuthenticated() {
		return ""
	}
	s := snap.User.Email
	if snap.User.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// printError translates a failure result into the user-facing message for
// the current screen. Nothing here rethrows: every command ends in a line of
// output.
func (a *App) printError(err error) {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Cannot reach the server. Check your connection and try again.")
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn("Your session has expired. Please sign in again.")
	default:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 500 {
			printlnFn("The server had a problem. Please try again later.")
			return
		}
		printlnFn("Error:", err.Error())
	}
}
