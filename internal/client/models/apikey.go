package models

import "time"

// APIKey identifies a tenant credential for the CAPTCHA verification API.
// Secret is only populated in the response to a create or regenerate call;
// list responses carry the short Prefix instead.
type APIKey struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Prefix     string     `json:"prefix"`
	Secret     string     `json:"secret,omitempty"`
	Disabled   bool       `json:"disabled"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}
