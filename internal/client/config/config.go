// Package config holds the runtime settings of the dashboard CLI and the
// defaults → JSON file → command-line flags layering that produces them.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - APIBaseURL: root of the platform HTTP API, including any path prefix.
//   - RequestTimeout: per-request transport timeout.
//   - SignInURL: external sign-in page the route guard points to when no
//     session is active; differs between development and production.
//   - PaymentURL: external payment page plan changes hand off to.
//   - StateDir: directory for the local state database and device secret.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SignInURL      string
	PaymentURL     string
	StateDir       string
}

// LoadDefaults populates c with the development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.SignInURL = "http://localhost:3000/signin"
	c.PaymentURL = "http://localhost:3000/payment"
	c.StateDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks that every configured address is an absolute http(s) URL.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"api base url": c.APIBaseURL,
		"sign-in url":  c.SignInURL,
		"payment url":  c.PaymentURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}
