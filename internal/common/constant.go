// Package common contains shared constants and sentinel errors used across
// the dashboard client packages.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	// BearerPrefix precedes the token value in the Authorization header.
	BearerPrefix = "Bearer "
)
