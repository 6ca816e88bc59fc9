// Package cli implements the interactive terminal dashboard: a REPL whose
// commands map to the platform's screens (stats, request logs, API keys,
// users, plans, billing, profile), gated by the session-derived route guard.
package cli
