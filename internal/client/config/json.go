package config

import (
	"encoding/json"
	"os"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/flagx"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. Absent fields leave the current value
// untouched.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SignInURL      string         `json:"sign_in_url"`
	PaymentURL     string         `json:"payment_url"`
	StateDir       string         `json:"state_dir"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no JSON. Read or parse errors panic; there
// is no sensible way to continue with a half-applied config file.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SignInURL != "" {
		cfg.SignInURL = jc.SignInURL
	}
	if jc.PaymentURL != "" {
		cfg.PaymentURL = jc.PaymentURL
	}
	if jc.StateDir != "" {
		cfg.StateDir = jc.StateDir
	}
}
