package models

import "time"

// Subscription is the tenant's current plan binding.
type Subscription struct {
	PlanID   string    `json:"plan_id"`
	PlanName string    `json:"plan_name"`
	Status   string    `json:"status"`
	RenewsAt time.Time `json:"renews_at,omitzero"`
}

// CheckoutResult is what the external payment page reports back via query
// parameters when the user returns from a plan-change handoff.
type CheckoutResult struct {
	Succeeded bool
	PlanID    string
	OrderID   string
	Reason    string
}
