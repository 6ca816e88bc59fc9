package cli

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// command couples one REPL verb with the access level its screen requires.
type command struct {
	name   string
	access Access
	help   string
	run    func(ctx context.Context, args []string) error
}

func (a *App) buildCommands() map[string]command {
	cmds := []command{
		{name: "login", access: AccessPublic, help: "sign in with email and password", run: a.cmdLogin},
		{name: "logout", access: AccessUser, help: "sign out and clear the stored session", run: a.cmdLogout},
		{name: "whoami", access: AccessUser, help: "show the current session", run: a.cmdWhoami},
		{name: "stats", access: AccessUser, help: "usage summary and per-type breakdown", run: a.cmdStats},
		{name: "requests", access: AccessUser, help: "request log: requests [pass|fail] [page] [-sort=time|latency]", run: a.cmdRequests},
		{name: "keys", access: AccessUser, help: "API keys: keys [create <label>|revoke <id>|regen <id>]", run: a.cmdKeys},
		{name: "profile", access: AccessUser, help: "show or edit your profile: profile [edit]", run: a.cmdProfile},
		{name: "plan", access: AccessUser, help: "billing: plan [options|change <plan-id>|confirm <url>]", run: a.cmdPlan},
		{name: "users", access: AccessAdmin, help: "manage users: users [create|edit <id>|delete <id>]", run: a.cmdUsers},
		{name: "plans", access: AccessAdmin, help: "manage plans: plans [create|edit <id>|delete <id>]", run: a.cmdPlans},
	}

	m := make(map[string]command, len(cmds))
	for _, c := range cmds {
		m[c.name] = c
	}
	return m
}

// dispatch runs one command line through the route guard. In a terminal a
// "redirect" is a printed pointer rather than a navigation.
func (a *App) dispatch(ctx context.Context, name string, args []string) {
	cmd, ok := a.commands[name]
	if !ok {
		printlnFn("Unknown command:", name)
		return
	}

	switch decide(a.store.Snapshot(), cmd.access) {
	case DecisionWait:
		printlnFn("Session is still loading, try again in a moment.")
	case DecisionSignIn:
		printlnFn("Not signed in. Open " + a.config.SignInURL + " in a browser, or type 'login'.")
	case DecisionDashboard:
		printlnFn("This screen needs administrator privileges.")
	case DecisionAllow:
		if err := cmd.run(ctx, args); err != nil {
			a.printError(err)
		}
	}
}

func (a *App) printHelp() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	snap := a.store.Snapshot()
	for _, name := range names {
		cmd := a.commands[name]
		if decide(snap, cmd.access) != DecisionAllow {
			continue
		}
		printlnFn(fmt.Sprintf("  %-10s %s", cmd.name, cmd.help))
	}
	printlnFn("  help       show this list")
	printlnFn("  exit       leave the program")
}

// runREPL reads command lines and dispatches them until EOF or exit/quit.
// Command handlers report their own errors through printError; the loop
// itself stays resilient and focused on I/O.
func runREPL(ctx context.Context, a *App, scanner *bufio.Scanner) {
	for {
		fmt.Printf("fyh %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.printHelp()
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			a.dispatch(ctx, parts[0], parts[1:])
		}
	}
}
