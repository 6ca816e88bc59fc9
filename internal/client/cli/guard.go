package cli

import "github.com/Find-Your-Humanity/dashboard-sub000/internal/client/session"

// Access is the capability a screen requires.
type Access int

const (
	// AccessPublic screens are reachable without a session.
	AccessPublic Access = iota
	// AccessUser screens need any active session.
	AccessUser
	// AccessAdmin screens need a session with elevated privilege.
	AccessAdmin
)

// Decision is the route guard's verdict for one navigation attempt.
type Decision int

const (
	// DecisionWait: session state is still settling; render nothing yet.
	DecisionWait Decision = iota
	// DecisionAllow: proceed to the screen.
	DecisionAllow
	// DecisionSignIn: no active session; point at the external sign-in page.
	DecisionSignIn
	// DecisionDashboard: active but non-elevated session on an admin
	// screen; fall back to the ordinary dashboard.
	DecisionDashboard
)

// decide is the route guard: a pure function of the current session snapshot
// and the requested screen's access level. It holds no state of its own.
func decide(snap session.Snapshot, access Access) Decision {
	if access == AccessPublic {
		return DecisionAllow
	}
	if snap.Loading {
		return DecisionWait
	}
	if !snap.IsAuthenticated() {
		return DecisionSignIn
	}
	if access == AccessAdmin && !snap.User.IsAdmin {
		return DecisionDashboard
	}
	return DecisionAllow
}
