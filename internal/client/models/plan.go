package models

// Plan is a subscription tier offered by the platform.
type Plan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MonthlyQuota  int64  `json:"monthly_quota"`
	RateLimit     int    `json:"rate_limit"`
	PriceCents    int64  `json:"price_cents"`
	Currency      string `json:"currency"`
	IsActive      bool   `json:"is_active"`
	IsDefaultPlan bool   `json:"is_default_plan"`
}

// PlanUpdate carries the editable plan fields; nil means "leave unchanged".
type PlanUpdate struct {
	Name         *string `json:"name,omitempty"`
	MonthlyQuota *int64  `json:"monthly_quota,omitempty"`
	RateLimit    *int    `json:"rate_limit,omitempty"`
	PriceCents   *int64  `json:"price_cents,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
